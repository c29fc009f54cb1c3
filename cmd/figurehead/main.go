// Command figurehead looks up who holds a role at a company.
//
// Usage:
//
//	figurehead "Acme Corp" CEO
//	BRAVE_API_KEY=... figurehead "Acme Corp" CTO   # adds the Brave provider
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/codeGROOVE-dev/figurehead"
	"github.com/codeGROOVE-dev/figurehead/cache"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	verbose := flag.Bool("v", false, "verbose logging (same as -debug)")
	noBrowser := flag.Bool("no-browser", false, "disable reading LinkedIn cookies from browser stores")
	noCache := flag.Bool("no-cache", false, "disable disk caching (enabled by default with 75-day TTL)")
	cacheTTL := flag.Duration("cache-ttl", 75*24*time.Hour, "cache time-to-live (default: 75 days, use 24h for testing)")
	braveKey := flag.String("brave-key", os.Getenv("BRAVE_API_KEY"), "Brave Search API key (default: $BRAVE_API_KEY)")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: figurehead [options] <company> <role>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nExamples:")
		fmt.Fprintln(os.Stderr, "  figurehead \"Acme Corp\" CEO")
		fmt.Fprintln(os.Stderr, "  figurehead -brave-key=... \"Acme Corp\" \"CTO & Founder\"")
		os.Exit(1)
	}

	company := flag.Arg(0)
	role := flag.Arg(1)

	// Setup logger
	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// Setup cache
	var store figurehead.Cache
	if !*noCache {
		diskCache, err := cache.NewDisk(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize disk cache, continuing in memory", "error", err)
		} else {
			defer func() {
				if err := diskCache.Close(); err != nil {
					logger.Warn("failed to close cache", "error", err)
				}
			}()
			store = diskCache
			logger.Debug("disk cache initialized", "ttl", cacheTTL.String())
		}
	}

	// Build options
	opts := []figurehead.Option{figurehead.WithLogger(logger)}
	if store != nil {
		opts = append(opts, figurehead.WithCache(store))
	}
	if !*noBrowser {
		opts = append(opts, figurehead.WithBrowserCookies())
	}
	if *braveKey != "" {
		opts = append(opts, figurehead.WithBraveAPIKey(*braveKey))
	}

	ctx := context.Background()

	answer, err := figurehead.FindPerson(ctx, company, role, opts...)
	if err != nil {
		switch {
		case errors.Is(err, figurehead.ErrNoCredibleSource), errors.Is(err, figurehead.ErrNoValidName):
			_ = outputJSON(map[string]string{"error": err.Error()}) //nolint:errcheck // best-effort error report
		default:
			// Internal details stay in the log, not the output.
			logger.Error("lookup failed", "error", err)
			_ = outputJSON(map[string]string{"error": "internal error"}) //nolint:errcheck // best-effort error report
		}
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}

	if err := outputJSON(answer); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
