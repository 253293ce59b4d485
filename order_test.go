package appctx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDependencyOrder_SortsOutOfOrderDeclarations(t *testing.T) {
	c := New(WithOrdering(DependencyOrder))
	err := c.Initialize(
		Provide2("facade", "service", "repo", NewFacade),
		Provide1("service", "repo", NewService),
		Provide("repo", NewRepo),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"repo", "service", "facade"}, c.BeanIDs())

	facade := MustGetAs[*Facade](c, "facade")
	require.Same(t, MustGetAs[*Service](c, "service"), facade.Service)
	require.Same(t, MustGetAs[*Repo](c, "repo"), facade.Repo)
}

func TestDependencyOrder_KeepsDeclarationOrderForIndependentBeans(t *testing.T) {
	c := New(WithOrdering(DependencyOrder))
	err := c.Initialize(
		Provide("z", NewRepo),
		Provide("a", NewRepo),
		Provide1("m", "a", NewService),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"z", "a", "m"}, c.BeanIDs())
}

func TestDependencyOrder_Missing(t *testing.T) {
	_, err := Initialize([]BeanDescriptor{
		Provide1("service", "repo", NewService),
	}, WithOrdering(DependencyOrder))

	var unresolved *UnresolvedDependencyError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, "service", unresolved.BeanID)
	require.Equal(t, "repo", unresolved.MissingID)
}

func TestDependencyOrder_Duplicate(t *testing.T) {
	_, err := Initialize([]BeanDescriptor{
		Provide("repo", NewRepo),
		Provide("repo", NewRepo),
	}, WithOrdering(DependencyOrder))
	require.ErrorIs(t, err, ErrDuplicateBeanID)
}

// --- DFS Cycle Detection Tests ---

func cycleBean(id string, deps ...string) BeanDescriptor {
	return Describe(id, func(_ []any) (any, error) { return &Repo{}, nil }, deps...)
}

func TestCycleDetection_TwoNode(t *testing.T) {
	_, err := Initialize([]BeanDescriptor{
		cycleBean("a", "b"),
		cycleBean("b", "a"),
	}, WithOrdering(DependencyOrder))

	var cyc *CyclicDependencyError
	require.ErrorAs(t, err, &cyc)
	require.Equal(t, []string{"a", "b", "a"}, cyc.Path)
	require.Contains(t, err.Error(), "dependency cycle detected: a -> b -> a")
}

func TestCycleDetection_ThreeNode(t *testing.T) {
	_, err := Initialize([]BeanDescriptor{
		cycleBean("root", "a3"),
		cycleBean("a3", "b3"),
		cycleBean("b3", "c3"),
		cycleBean("c3", "a3"),
	}, WithOrdering(DependencyOrder))

	require.ErrorIs(t, err, ErrCyclicDependency)
	// The path starts at the first bean of the cycle, not at the entry point.
	require.Contains(t, err.Error(), "a3 -> b3 -> c3 -> a3")
	require.NotContains(t, err.Error(), "root")
}

func TestCycleDetection_SelfCycle(t *testing.T) {
	_, err := Initialize([]BeanDescriptor{
		cycleBean("aself", "aself"),
	}, WithOrdering(DependencyOrder))

	require.ErrorIs(t, err, ErrCyclicDependency)
	require.Contains(t, err.Error(), "aself -> aself")
}

func TestCycle_DeclarationOrderReportsUnresolved(t *testing.T) {
	_, err := Initialize([]BeanDescriptor{
		cycleBean("a", "b"),
		cycleBean("b", "a"),
	})
	var unresolved *UnresolvedDependencyError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, "a", unresolved.BeanID)
	require.Equal(t, "b", unresolved.MissingID)
}

func TestParseOrdering(t *testing.T) {
	o, err := ParseOrdering("")
	require.NoError(t, err)
	require.Equal(t, DeclarationOrder, o)

	o, err = ParseOrdering(" Dependency ")
	require.NoError(t, err)
	require.Equal(t, DependencyOrder, o)
	require.Equal(t, "dependency", o.String())

	_, err = ParseOrdering("random")
	require.Error(t, err)
}
