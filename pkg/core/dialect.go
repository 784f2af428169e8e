package core

// IdentifierConfig defines how identifiers are quoted.
type IdentifierConfig struct {
	Quote    string // Quote character: ", `, [
	QuoteEnd string // End quote character (usually same as Quote, ] for [)
	Escape   string // Escape sequence: "", ``, ]]
}

// Unquote strips the surrounding quote characters from a quoted identifier.
// Input that is not wrapped in this dialect's quotes is returned unchanged.
func (c IdentifierConfig) Unquote(raw string) string {
	start, end := c.Quote, c.QuoteEnd
	if end == "" {
		end = start
	}
	if start == "" || len(raw) < len(start)+len(end) {
		return raw
	}
	if raw[:len(start)] != start || raw[len(raw)-len(end):] != end {
		return raw
	}
	return raw[len(start) : len(raw)-len(end)]
}
