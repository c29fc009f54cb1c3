// Package main demonstrates basic usage of the figurehead library.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/codeGROOVE-dev/figurehead"
)

func main() {
	flag.Parse()

	if len(flag.Args()) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <company> <role>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s \"Acme Corp\" CEO\n", os.Args[0])
		os.Exit(1)
	}

	ctx := context.Background()

	answer, err := figurehead.FindPerson(ctx, flag.Arg(0), flag.Arg(1))
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}

	fmt.Printf("Name:       %s %s\n", answer.FirstName, answer.LastName)
	fmt.Printf("Role:       %s at %s\n", answer.Role, answer.Company)
	fmt.Printf("Source:     %s\n", answer.SourceURL)
	fmt.Printf("Confidence: %.2f\n", answer.Confidence)
}
