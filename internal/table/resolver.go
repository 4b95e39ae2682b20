package table

import "strings"

// Roles holds the header resolved for each semantic column role. An empty
// string means no header qualified for that role.
type Roles struct {
	Identifier string
	Weight     string
	Category   string
}

// HasIdentifier reports whether an identifier-role column was resolved.
func (r Roles) HasIdentifier() bool {
	return r.Identifier != ""
}

// Resolve locates semantically-equivalent columns in a heterogeneous header
// set by case-insensitive substring matching. Within each role the first
// matching header in header order wins; for the identifier role a header
// containing "symbol" takes precedence over one containing "holding".
func Resolve(headers []string) Roles {
	var roles Roles
	var firstHolding string

	for _, h := range headers {
		lower := strings.ToLower(h)

		if roles.Identifier == "" && strings.Contains(lower, "symbol") {
			roles.Identifier = h
		}
		if firstHolding == "" && strings.Contains(lower, "holding") {
			firstHolding = h
		}
		if roles.Weight == "" && strings.Contains(lower, "weight") && strings.Contains(lower, "percent") {
			roles.Weight = h
		}
		if roles.Category == "" && strings.Contains(lower, "category") {
			roles.Category = h
		}
	}

	if roles.Identifier == "" {
		roles.Identifier = firstHolding
	}
	return roles
}

// EmbeddedHeader reports whether a data row is actually the real header row.
// Some spreadsheet exports place metadata above the header, so the literal
// markers "Holding" or "Model_Name" showing up in the first data row signal
// that the row must be promoted to headers.
func EmbeddedHeader(values []string) bool {
	joined := strings.Join(values, "")
	return strings.Contains(joined, "Holding") || strings.Contains(joined, "Model_Name")
}
