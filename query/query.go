// Package query expands a (company, role) pair into search query strings.
package query

import "strings"

// roleAliases maps uppercase role names to common alternate phrasings.
// Variants widen recall: a page may say "Chief Executive Officer" where
// the user asked for "CEO".
var roleAliases = map[string][]string{
	"CEO":       {"Chief Executive Officer", "Chief Executive"},
	"CTO":       {"Chief Technology Officer", "Chief Technical Officer"},
	"CFO":       {"Chief Financial Officer"},
	"CMO":       {"Chief Marketing Officer", "Marketing Director"},
	"COO":       {"Chief Operating Officer"},
	"FOUNDER":   {"Co-Founder", "Founding Partner"},
	"DIRECTOR":  {"Managing Director", "Executive Director"},
	"MANAGER":   {"General Manager", "Senior Manager"},
	"PRESIDENT": {"President & CEO"},
}

// Build returns the deduplicated set of search queries for a company and
// role. Each role variant (the role itself plus its aliases) is phrased
// five ways. Order is deterministic: first occurrence wins.
func Build(company, role string) []string {
	variants := []string{role}
	variants = append(variants, roleAliases[strings.ToUpper(role)]...)

	// Compound roles like "CEO & Founder" pick up aliases for each part.
	if strings.Contains(role, "&") {
		for _, part := range strings.Split(role, "&") {
			part = strings.TrimSpace(part)
			variants = append(variants, roleAliases[strings.ToUpper(part)]...)
		}
	}

	seen := make(map[string]bool)
	var queries []string
	add := func(q string) {
		if !seen[q] {
			seen[q] = true
			queries = append(queries, q)
		}
	}

	for _, v := range variants {
		add(company + " " + v)
		add("Who is the " + v + " of " + company)
		add(company + " " + v + " LinkedIn")
		add(company + " leadership " + v)
		add(company + " about " + v)
	}
	return queries
}

// Aliases returns the known alternate phrasings for a role, or nil.
func Aliases(role string) []string {
	return roleAliases[strings.ToUpper(role)]
}
