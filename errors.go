package appctx

import (
	"errors"
	"fmt"
)

var (
	ErrBeanIdParamIsEmpty = errors.New("beanID parameter is empty")
	ErrFactoryParamIsNil  = errors.New("factory parameter is nil")
	ErrNilBean            = errors.New("factory returned a nil bean")
	ErrAlreadyInitialized = errors.New("container already initialized")
	ErrContainerNotReady  = errors.New("container is not ready")
	ErrContainerFailed    = errors.New("container construction failed")
)

// Error kinds. Each typed error below matches exactly one of these with errors.Is.
var (
	ErrUnresolvedDependency = errors.New("unresolved dependency")
	ErrDuplicateBeanID      = errors.New("duplicate bean id")
	ErrUnknownBeanID        = errors.New("unknown bean id")
	ErrTypeMismatch         = errors.New("bean type mismatch")
	ErrCyclicDependency     = errors.New("dependency cycle detected")
	ErrFactoryFailed        = errors.New("bean factory failed")
)

// UnresolvedDependencyError is returned by Initialize when a bean depends on an id
// that has not been constructed at the point it is needed.
type UnresolvedDependencyError struct {
	BeanID    string
	MissingID string
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("dependency bean '%s' for '%s' receiver bean not found", e.MissingID, e.BeanID)
}

func (e *UnresolvedDependencyError) Is(target error) bool { return target == ErrUnresolvedDependency }

type DuplicateBeanIDError struct {
	ID string
}

func (e *DuplicateBeanIDError) Error() string {
	return fmt.Sprintf("bean '%s' is already registered", e.ID)
}

func (e *DuplicateBeanIDError) Is(target error) bool { return target == ErrDuplicateBeanID }

type UnknownBeanIDError struct {
	BeanID string
}

func (e *UnknownBeanIDError) Error() string {
	return fmt.Sprintf("bean '%s' not found", e.BeanID)
}

func (e *UnknownBeanIDError) Is(target error) bool { return target == ErrUnknownBeanID }

// TypeMismatchError reports a bean whose stored type is not the one the caller
// (or a typed factory) asked for.
type TypeMismatchError struct {
	BeanID   string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("bean '%s' type mismatch: required %s, registered %s", e.BeanID, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// CyclicDependencyError carries the dependency path that closes the cycle,
// first and last element being the same bean id.
type CyclicDependencyError struct {
	Path []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", joinPath(e.Path))
}

func (e *CyclicDependencyError) Is(target error) bool { return target == ErrCyclicDependency }

// FactoryError wraps a failure raised by a bean's factory: a returned error,
// a recovered panic or a nil instance.
type FactoryError struct {
	BeanID string
	Err    error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("factory for bean '%s' failed: %v", e.BeanID, e.Err)
}

func (e *FactoryError) Is(target error) bool { return target == ErrFactoryFailed }

func (e *FactoryError) Unwrap() error { return e.Err }
