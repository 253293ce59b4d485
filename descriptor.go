package appctx

// Factory builds one bean from its resolved dependencies, passed in the positional
// order of BeanDescriptor.DependencyIDs.
type Factory func(deps []any) (any, error)

// BeanDescriptor declares a bean: its id, the ids it depends on and how to build it.
type BeanDescriptor struct {
	ID            string
	DependencyIDs []string
	Factory       Factory
}

// Describe returns a descriptor for a raw Factory.
func Describe(id string, factory Factory, dependencyIDs ...string) BeanDescriptor {
	return BeanDescriptor{
		ID:            id,
		DependencyIDs: append([]string(nil), dependencyIDs...),
		Factory:       factory,
	}
}

func (d BeanDescriptor) clone() BeanDescriptor {
	d.DependencyIDs = append([]string(nil), d.DependencyIDs...)
	return d
}

// FactoryOf adapts a typed constructor with no dependencies to a Factory.
func FactoryOf[T any](fn func() (T, error)) Factory {
	return func(_ []any) (any, error) {
		return fn()
	}
}

func FactoryOf1[T, A any](fn func(A) (T, error)) Factory {
	return func(deps []any) (any, error) {
		a, err := argAs[A](deps, 0)
		if err != nil {
			return nil, err
		}
		return fn(a)
	}
}

func FactoryOf2[T, A, B any](fn func(A, B) (T, error)) Factory {
	return func(deps []any) (any, error) {
		a, err := argAs[A](deps, 0)
		if err != nil {
			return nil, err
		}
		b, err := argAs[B](deps, 1)
		if err != nil {
			return nil, err
		}
		return fn(a, b)
	}
}

func FactoryOf3[T, A, B, C any](fn func(A, B, C) (T, error)) Factory {
	return func(deps []any) (any, error) {
		a, err := argAs[A](deps, 0)
		if err != nil {
			return nil, err
		}
		b, err := argAs[B](deps, 1)
		if err != nil {
			return nil, err
		}
		c, err := argAs[C](deps, 2)
		if err != nil {
			return nil, err
		}
		return fn(a, b, c)
	}
}

// Provide declares a bean without dependencies.
func Provide[T any](id string, fn func() T) BeanDescriptor {
	return ProvideE(id, func() (T, error) { return fn(), nil })
}

// Provide1 declares a bean whose constructor takes the bean registered under a.
func Provide1[T, A any](id, a string, fn func(A) T) BeanDescriptor {
	return ProvideE1(id, a, func(x A) (T, error) { return fn(x), nil })
}

func Provide2[T, A, B any](id, a, b string, fn func(A, B) T) BeanDescriptor {
	return ProvideE2(id, a, b, func(x A, y B) (T, error) { return fn(x, y), nil })
}

func Provide3[T, A, B, C any](id, a, b, c string, fn func(A, B, C) T) BeanDescriptor {
	return ProvideE3(id, a, b, c, func(x A, y B, z C) (T, error) { return fn(x, y, z), nil })
}

// ProvideE is Provide for constructors that can fail.
func ProvideE[T any](id string, fn func() (T, error)) BeanDescriptor {
	return Describe(id, FactoryOf(fn))
}

func ProvideE1[T, A any](id, a string, fn func(A) (T, error)) BeanDescriptor {
	return Describe(id, FactoryOf1(fn), a)
}

func ProvideE2[T, A, B any](id, a, b string, fn func(A, B) (T, error)) BeanDescriptor {
	return Describe(id, FactoryOf2(fn), a, b)
}

func ProvideE3[T, A, B, C any](id, a, b, c string, fn func(A, B, C) (T, error)) BeanDescriptor {
	return Describe(id, FactoryOf3(fn), a, b, c)
}
