package manifest

import (
	"sort"
	"sync"

	"github.com/Station-Manager/appctx"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrUnknownKind   = errors.New("unknown bean kind")
	ErrDuplicateKind = errors.New("bean kind already registered")
	ErrEmptyKind     = errors.New("bean kind is empty")
)

// Catalog maps kind names used in manifests to the factories that build them.
type Catalog struct {
	mu    sync.RWMutex
	kinds map[string]appctx.Factory
}

func NewCatalog() *Catalog {
	return &Catalog{kinds: make(map[string]appctx.Factory)}
}

func (c *Catalog) Register(kind string, factory appctx.Factory) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if factory == nil {
		return errors.Wrapf(appctx.ErrFactoryParamIsNil, "kind '%s'", kind)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.kinds[kind]; exists {
		return errors.Wrapf(ErrDuplicateKind, "kind '%s'", kind)
	}
	c.kinds[kind] = factory
	return nil
}

func (c *Catalog) Lookup(kind string) (appctx.Factory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.kinds[kind]
	return f, ok
}

// Kinds returns the registered kind names, sorted.
func (c *Catalog) Kinds() []string {
	c.mu.RLock()
	kinds := lo.Keys(c.kinds)
	c.mu.RUnlock()
	sort.Strings(kinds)
	return kinds
}
