// Package post holds the sample post components the CLI wires through the container:
// an in-memory repository, a service on top of it and a facade using both.
package post

import (
	"sync"

	"github.com/Station-Manager/appctx"
	"github.com/Station-Manager/appctx/manifest"
	"github.com/pkg/errors"
)

// Bean ids and manifest kinds.
const (
	RepositoryBean = "postRepository"
	ServiceBean    = "postService"
	FacadeBean     = "postFacade"

	RepositoryKind = "post.repository"
	ServiceKind    = "post.service"
	FacadeKind     = "post.facade"
)

var ErrEmptyTitle = errors.New("post title is empty")

type Post struct {
	ID    int
	Title string
}

type Repository struct {
	mu    sync.RWMutex
	posts []Post
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Save(title string) Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := Post{ID: len(r.posts) + 1, Title: title}
	r.posts = append(r.posts, p)
	return p
}

func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Write(title string) (Post, error) {
	if title == "" {
		return Post{}, ErrEmptyTitle
	}
	return s.repo.Save(title), nil
}

func (s *Service) Repository() *Repository { return s.repo }

type Facade struct {
	service *Service
	repo    *Repository
}

func NewFacade(service *Service, repo *Repository) *Facade {
	return &Facade{service: service, repo: repo}
}

// WriteAll writes every title and returns the number of stored posts afterwards.
func (f *Facade) WriteAll(titles ...string) (int, error) {
	for _, t := range titles {
		if _, err := f.service.Write(t); err != nil {
			return f.repo.Count(), errors.Wrapf(err, "failed to write post %q", t)
		}
	}
	return f.repo.Count(), nil
}

func (f *Facade) Service() *Service       { return f.service }
func (f *Facade) Repository() *Repository { return f.repo }

// Descriptors returns the post beans in dependency order.
func Descriptors() []appctx.BeanDescriptor {
	return []appctx.BeanDescriptor{
		appctx.Provide(RepositoryBean, NewRepository),
		appctx.Provide1(ServiceBean, RepositoryBean, NewService),
		appctx.Provide2(FacadeBean, ServiceBean, RepositoryBean, NewFacade),
	}
}

// RegisterKinds makes the post components available to manifests.
func RegisterKinds(catalog *manifest.Catalog) error {
	kinds := map[string]appctx.Factory{
		RepositoryKind: appctx.FactoryOf(func() (*Repository, error) { return NewRepository(), nil }),
		ServiceKind:    appctx.FactoryOf1(func(r *Repository) (*Service, error) { return NewService(r), nil }),
		FacadeKind:     appctx.FactoryOf2(func(s *Service, r *Repository) (*Facade, error) { return NewFacade(s, r), nil }),
	}
	for kind, f := range kinds {
		if err := catalog.Register(kind, f); err != nil {
			return err
		}
	}
	return nil
}
