// Package person defines the common types for role-holder lookups.
package person

import "errors"

// Common errors returned by the finder.
var (
	// ErrNoCredibleSource means no name could be extracted from any source.
	ErrNoCredibleSource = errors.New("no credible source found")
	// ErrNoValidName means candidates existed but none scored as a valid winner.
	ErrNoValidName = errors.New("could not determine a valid name")
)

// Answer is the best-evidenced person found for a (company, role) lookup.
//
//nolint:govet // fieldalignment: intentional layout for readability
type Answer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	SourceURL string `json:"source_url"`

	// Confidence is the final ranking score in [0,1], rounded to two decimals.
	// It reflects source credibility and corroboration, not verified truth.
	Confidence float64 `json:"confidence"`
}
