package appctx

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is the lifecycle position of a Container.
type State int32

const (
	Uninitialized State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

type Container struct {
	buildLock sync.Mutex
	// state publishes the registry: everything below is written before the
	// Ready/Failed store and never written again.
	state atomic.Int32

	id       string
	log      zerolog.Logger
	ordering Ordering

	descriptors []BeanDescriptor
	// registry maps bean ids to their single constructed instance.
	registry map[string]any
	// order holds the bean ids in construction order.
	order []string
	err   error
}

func New(opts ...Option) *Container {
	c := &Container{
		id:       uuid.NewString(),
		log:      zerolog.Nop(),
		ordering: DeclarationOrder,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str(fieldComponent, logComponent).Str(fieldContainer, c.id).Logger()
	return c
}

// Initialize creates a container and constructs every descriptor. The container is
// only returned when it reached the Ready state.
func Initialize(descriptors []BeanDescriptor, opts ...Option) (*Container, error) {
	c := New(opts...)
	if err := c.Initialize(descriptors...); err != nil {
		return nil, err
	}
	return c, nil
}

// Initialize constructs every bean exactly once and moves the container to Ready.
// The first error aborts the pass, drops every bean built so far and leaves the
// container Failed; a container can only be initialized once.
func (c *Container) Initialize(descriptors ...BeanDescriptor) error {
	c.buildLock.Lock()
	defer c.buildLock.Unlock()

	if State(c.state.Load()) != Uninitialized {
		return ErrAlreadyInitialized
	}

	start := time.Now()
	descs := make([]BeanDescriptor, len(descriptors))
	for i, d := range descriptors {
		descs[i] = d.clone()
	}

	registry, order, err := c.construct(descs)
	if err != nil {
		c.err = err
		c.state.Store(int32(Failed))
		c.log.Error().Err(err).Msg("bean construction failed")
		return err
	}

	c.descriptors = descs
	c.registry = registry
	c.order = order
	c.state.Store(int32(Ready))

	c.log.Info().
		Int(fieldBeans, len(order)).
		Dur(fieldElapsed, time.Since(start)).
		Stringer(fieldOrdering, c.ordering).
		Msg("container ready")
	return nil
}

func (c *Container) construct(descs []BeanDescriptor) (map[string]any, []string, error) {
	for _, d := range descs {
		if d.ID == emptyString {
			return nil, nil, ErrBeanIdParamIsEmpty
		}
		if d.Factory == nil {
			return nil, nil, fmt.Errorf("bean '%s': %w", d.ID, ErrFactoryParamIsNil)
		}
	}

	plan := descs
	if c.ordering == DependencyOrder {
		var err error
		if plan, err = dependencyOrder(descs); err != nil {
			return nil, nil, err
		}
	}

	registry := make(map[string]any, len(plan))
	order := make([]string, 0, len(plan))
	for _, d := range plan {
		if _, exists := registry[d.ID]; exists {
			return nil, nil, &DuplicateBeanIDError{ID: d.ID}
		}

		deps := make([]any, len(d.DependencyIDs))
		for i, depID := range d.DependencyIDs {
			instance, ok := registry[depID]
			if !ok {
				return nil, nil, &UnresolvedDependencyError{BeanID: d.ID, MissingID: depID}
			}
			deps[i] = instance
		}

		instance, err := callFactory(d, deps)
		if err != nil {
			return nil, nil, err
		}
		registry[d.ID] = instance
		order = append(order, d.ID)

		c.log.Debug().
			Str(fieldBean, d.ID).
			Strs(fieldDeps, d.DependencyIDs).
			Str(fieldType, typeName(reflect.TypeOf(instance))).
			Msg("bean constructed")
	}
	return registry, order, nil
}

func callFactory(d BeanDescriptor, deps []any) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			instance = nil
			err = &FactoryError{BeanID: d.ID, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	instance, err = d.Factory(deps)
	if err != nil {
		var argErr *argumentError
		if errors.As(err, &argErr) && argErr.index < len(d.DependencyIDs) {
			err = &TypeMismatchError{
				BeanID:   d.DependencyIDs[argErr.index],
				Expected: typeName(argErr.expected),
				Actual:   typeName(argErr.actual),
			}
		}
		return nil, &FactoryError{BeanID: d.ID, Err: err}
	}
	if isNil(instance) {
		return nil, &FactoryError{BeanID: d.ID, Err: ErrNilBean}
	}
	return instance, nil
}

// MustGet returns a bean instance by its ID or panics if it cannot be resolved.
// Prefer Get in production code to handle errors gracefully.
func (c *Container) MustGet(beanID string) any {
	v, err := c.Get(beanID)
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns the singleton registered under beanID. It never constructs anything;
// the container must be Ready.
func (c *Container) Get(beanID string) (any, error) {
	if beanID == emptyString {
		return nil, ErrBeanIdParamIsEmpty
	}

	switch State(c.state.Load()) {
	case Ready:
	case Failed:
		return nil, fmt.Errorf("%w: %w", ErrContainerFailed, c.err)
	default:
		return nil, ErrContainerNotReady
	}

	v, ok := c.registry[beanID]
	if !ok {
		return nil, &UnknownBeanIDError{BeanID: beanID}
	}
	return v, nil
}

// GetAs returns the bean registered under beanID as T. A bean that is not a T
// yields a TypeMismatchError instead of a zero value.
func GetAs[T any](c *Container, beanID string) (T, error) {
	var zero T
	v, err := c.Get(beanID)
	if err != nil {
		return zero, err
	}
	x, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{
			BeanID:   beanID,
			Expected: typeName(typeOf[T]()),
			Actual:   typeName(reflect.TypeOf(v)),
		}
	}
	return x, nil
}

func MustGetAs[T any](c *Container, beanID string) T {
	x, err := GetAs[T](c, beanID)
	if err != nil {
		panic(err)
	}
	return x
}

// Has reports whether a Ready container holds beanID.
func (c *Container) Has(beanID string) bool {
	if State(c.state.Load()) != Ready {
		return false
	}
	_, ok := c.registry[beanID]
	return ok
}

// BeanIDs returns the bean ids in construction order.
func (c *Container) BeanIDs() []string {
	if State(c.state.Load()) != Ready {
		return nil
	}
	return append([]string(nil), c.order...)
}

// Descriptors returns a copy of the descriptors the container was built from.
func (c *Container) Descriptors() []BeanDescriptor {
	if State(c.state.Load()) != Ready {
		return nil
	}
	out := make([]BeanDescriptor, len(c.descriptors))
	for i, d := range c.descriptors {
		out[i] = d.clone()
	}
	return out
}

func (c *Container) State() State { return State(c.state.Load()) }

// Err returns the construction error of a Failed container, nil otherwise.
func (c *Container) Err() error {
	if State(c.state.Load()) != Failed {
		return nil
	}
	return c.err
}

func (c *Container) ID() string { return c.id }

func (c *Container) Ordering() Ordering { return c.ordering }
