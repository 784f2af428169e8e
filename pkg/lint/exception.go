package lint

import (
	"sync"

	"github.com/leapstack-labs/sqlint/pkg/segment"
)

// IdentifierException exempts parts of an identifier from character
// validation in one specific dialect and ancestor context. Exceptions are
// kept apart from the generic validation algorithm: adding a dialect
// convention means registering an entry, not touching rule logic.
type IdentifierException struct {
	// Dialect names the dialect the exception belongs to (lower case).
	Dialect string
	// Ancestor must match the identifier's immediate parent for the
	// exception to apply.
	Ancestor segment.Predicate
	// Rewrite strips the dialect-legitimate characters before validation.
	Rewrite func(identifier string) string
}

var (
	exceptionsMu sync.RWMutex
	exceptions   []IdentifierException
)

// RegisterIdentifierException adds an exception to the global table.
// Called by dialect packages in their init() functions.
func RegisterIdentifierException(ex IdentifierException) {
	exceptionsMu.Lock()
	defer exceptionsMu.Unlock()
	exceptions = append(exceptions, ex)
}

// ApplyIdentifierExceptions rewrites identifier through every registered
// exception matching the dialect and the identifier's immediate parent.
// With a nil parent or no matching exception the identifier is returned
// unchanged.
func ApplyIdentifierExceptions(dialectName, identifier string, parent *segment.Segment) string {
	if parent == nil {
		return identifier
	}

	exceptionsMu.RLock()
	defer exceptionsMu.RUnlock()
	for _, ex := range exceptions {
		if ex.Dialect != dialectName {
			continue
		}
		if ex.Ancestor != nil && !ex.Ancestor(parent) {
			continue
		}
		if ex.Rewrite != nil {
			identifier = ex.Rewrite(identifier)
		}
	}
	return identifier
}

// ClearIdentifierExceptions removes all registered exceptions. Used for testing.
func ClearIdentifierExceptions() {
	exceptionsMu.Lock()
	defer exceptionsMu.Unlock()
	exceptions = nil
}
