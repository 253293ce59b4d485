package appctx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type triple struct {
	A string
	B int
	C *Repo
}

func TestProvide3_WiresAllArguments(t *testing.T) {
	c, err := Initialize([]BeanDescriptor{
		Provide("name", func() string { return "posts" }),
		Provide("size", func() int { return 3 }),
		Provide("repo", NewRepo),
		Provide3("triple", "name", "size", "repo", func(a string, b int, r *Repo) *triple {
			return &triple{A: a, B: b, C: r}
		}),
	})
	require.NoError(t, err)

	got := MustGetAs[*triple](c, "triple")
	require.Equal(t, "posts", got.A)
	require.Equal(t, 3, got.B)
	require.Same(t, MustGetAs[*Repo](c, "repo"), got.C)
}

func TestProvideE_ErrorVariants(t *testing.T) {
	boom := errors.New("boom")

	cases := map[string][]BeanDescriptor{
		"E1": {
			Provide("repo", NewRepo),
			ProvideE1("x", "repo", func(*Repo) (*Service, error) { return nil, boom }),
		},
		"E2": {
			Provide("repo", NewRepo),
			Provide1("service", "repo", NewService),
			ProvideE2("x", "service", "repo", func(*Service, *Repo) (*Facade, error) { return nil, boom }),
		},
		"E3": {
			Provide("repo", NewRepo),
			Provide1("service", "repo", NewService),
			ProvideE3("x", "service", "repo", "repo", func(*Service, *Repo, *Repo) (*Facade, error) { return nil, boom }),
		},
	}

	for name, descs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Initialize(descs)
			var fe *FactoryError
			require.ErrorAs(t, err, &fe)
			require.Equal(t, "x", fe.BeanID)
			require.ErrorIs(t, err, boom)
		})
	}
}

func TestFactoryOf_TooFewDependencies(t *testing.T) {
	// A raw descriptor that declares fewer dependencies than the adapter needs.
	_, err := Initialize([]BeanDescriptor{
		Provide("repo", NewRepo),
		Describe("facade", FactoryOf2(func(r *Repo, s *Service) (*Facade, error) {
			return NewFacade(s, r), nil
		}), "repo"),
	})
	require.ErrorIs(t, err, ErrFactoryFailed)
	require.NotErrorIs(t, err, ErrTypeMismatch)
	require.Contains(t, err.Error(), "factory expects at least 2 dependencies, got 1")
}

func TestFactoryOf_MismatchReportsDependencyAtPosition(t *testing.T) {
	_, err := Initialize([]BeanDescriptor{
		Provide("repo", NewRepo),
		Provide1("service", "repo", NewService),
		// Arguments swapped: position 1 expects *Repo but receives the service.
		Provide2("facade", "service", "service", NewFacade),
	})
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "service", mismatch.BeanID)
	require.Equal(t, "*appctx.Repo", mismatch.Expected)
	require.Equal(t, "*appctx.Service", mismatch.Actual)
}

func TestDescribe_CopiesDependencyIDs(t *testing.T) {
	deps := []string{"a", "b"}
	d := Describe("x", func(_ []any) (any, error) { return 1, nil }, deps...)
	deps[0] = "changed"
	require.Equal(t, []string{"a", "b"}, d.DependencyIDs)
}
