package appctx

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Ordering selects how Initialize decides the construction order.
type Ordering int

const (
	// DeclarationOrder trusts the caller: every dependency must be declared before
	// the bean that needs it.
	DeclarationOrder Ordering = iota
	// DependencyOrder sorts the descriptors topologically first and rejects cycles.
	DependencyOrder
)

func (o Ordering) String() string {
	switch o {
	case DeclarationOrder:
		return "declaration"
	case DependencyOrder:
		return "dependency"
	default:
		return fmt.Sprintf("ordering(%d)", int(o))
	}
}

// ParseOrdering accepts "declaration" or "dependency" (case-insensitive). The empty
// string yields DeclarationOrder.
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case emptyString, "declaration":
		return DeclarationOrder, nil
	case "dependency":
		return DependencyOrder, nil
	default:
		return DeclarationOrder, fmt.Errorf("unknown ordering %q", s)
	}
}

type Option func(*Container)

// WithLogger sets the logger used for construction events. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Container) {
		c.log = logger
	}
}

func WithOrdering(ordering Ordering) Option {
	return func(c *Container) {
		c.ordering = ordering
	}
}
