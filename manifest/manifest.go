// Package manifest declares beans in YAML so that adding a component to an
// application is a data change rather than a code change.
//
// A manifest names each bean, the catalog kind that builds it and the ids it depends on:
//
//	ordering: dependency
//	beans:
//	  - id: repo
//	    kind: post.repository
//	  - id: service
//	    kind: post.service
//	    dependsOn: [repo]
//
// Kinds are resolved against a Catalog of appctx.Factory values registered by the
// application at start-up.
package manifest

import (
	"os"
	"strings"

	"github.com/Station-Manager/appctx"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Bean is one manifest entry.
type Bean struct {
	ID        string   `yaml:"id" validate:"required"`
	Kind      string   `yaml:"kind" validate:"required"`
	DependsOn []string `yaml:"dependsOn" validate:"dive,required"`
}

type Manifest struct {
	Ordering string `yaml:"ordering" validate:"omitempty,oneof=declaration dependency"`
	Beans    []Bean `yaml:"beans" validate:"required,min=1,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalWithOptions(data, &m, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest: %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid manifest: %s", path)
	}
	return m, nil
}

func (m *Manifest) Validate() error {
	m.Ordering = strings.ToLower(strings.TrimSpace(m.Ordering))
	if err := validate.Struct(m); err != nil {
		return errors.Wrap(err, "manifest validation failed")
	}
	return nil
}

// Descriptors turns the manifest entries into bean descriptors, keeping the
// declaration order. Duplicate ids are left for the container to report.
func (m *Manifest) Descriptors(catalog *Catalog) ([]appctx.BeanDescriptor, error) {
	descs := make([]appctx.BeanDescriptor, 0, len(m.Beans))
	for _, b := range m.Beans {
		factory, ok := catalog.Lookup(b.Kind)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownKind, "bean '%s' uses kind '%s'", b.ID, b.Kind)
		}
		descs = append(descs, appctx.Describe(b.ID, factory, b.DependsOn...))
	}
	return descs, nil
}

// Options returns the container options the manifest asks for.
func (m *Manifest) Options() ([]appctx.Option, error) {
	ordering, err := appctx.ParseOrdering(m.Ordering)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return []appctx.Option{appctx.WithOrdering(ordering)}, nil
}
