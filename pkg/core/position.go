package core

import "fmt"

// Position locates a point in a source file. Line and Col are 1-based;
// the zero value means "position unknown".
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Valid reports whether the position carries real location information.
func (p Position) Valid() bool {
	return p.Line > 0
}

// String returns the position in "line:col" form, or "-" when unknown.
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
