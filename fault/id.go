package fault

import (
	"fmt"
	"strings"
)

// ID is the stable identity of a failure category, used as an
// aggregation and reporting key. Both parts must be non-blank.
type ID struct {
	Namespace string
	Name      string
}

// NewID creates an ID and validates both parts.
func NewID(namespace, name string) (ID, error) {
	id := ID{Namespace: strings.TrimSpace(namespace), Name: strings.TrimSpace(name)}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// MustID is like NewID but panics on invalid input. Intended for
// package-level ID declarations.
func MustID(namespace, name string) ID {
	id, err := NewID(namespace, name)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseID parses the "namespace.name" form. The name may itself contain
// dots; only the first dot splits.
func ParseID(s string) (ID, error) {
	namespace, name, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	return NewID(namespace, name)
}

// Validate checks that both parts are non-blank.
func (id ID) Validate() error {
	if strings.TrimSpace(id.Namespace) == "" {
		return fmt.Errorf("%w: blank namespace", ErrMalformedID)
	}
	if strings.TrimSpace(id.Name) == "" {
		return fmt.Errorf("%w: blank name", ErrMalformedID)
	}
	return nil
}

// String returns the "namespace.name" form.
func (id ID) String() string {
	return id.Namespace + "." + id.Name
}
