package plan

import (
	"context"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Source defines how a plan catalog is loaded at startup.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

type inMemSource struct {
	catalog Catalog
}

// NewInMemSource returns a Source backed by an already-built catalog.
func NewInMemSource(c Catalog) Source {
	return &inMemSource{catalog: c}
}

func (s *inMemSource) Load(ctx context.Context) (Catalog, error) {
	return s.catalog, nil
}

type yamlSource struct {
	path string
}

// NewYAMLSource returns a Source that reads the catalog from a YAML file.
// The file holds a list of plan documents; validation on load applies the
// same rules as NewCatalog.
func NewYAMLSource(path string) Source {
	return &yamlSource{path: path}
}

// yamlPlan is the on-disk plan document. Limits use the resource token
// as key and "unlimited" or a non-negative integer as value.
type yamlPlan struct {
	Tier        string           `yaml:"tier"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Limits      map[string]int64 `yaml:"limits"`
	Features    []string         `yaml:"features"`
	Price       Money            `yaml:"price"`
}

func (s *yamlSource) Load(ctx context.Context) (Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Catalog{}, errors.Join(ErrFailedToLoadCatalog, err)
	}

	var docs []yamlPlan
	if err := yaml.Unmarshal(raw, &docs); err != nil {
		return Catalog{}, errors.Join(ErrFailedToLoadCatalog, ErrFailedToParseCatalogDoc, err)
	}

	plans := make([]Plan, 0, len(docs))
	for _, d := range docs {
		tier, err := ParseTier(d.Tier)
		if err != nil {
			return Catalog{}, errors.Join(ErrFailedToLoadCatalog, err)
		}

		limits := make(map[Resource]int64, len(d.Limits))
		for res, v := range d.Limits {
			limits[Resource(res)] = v
		}
		features := make([]Feature, 0, len(d.Features))
		for _, f := range d.Features {
			features = append(features, Feature(f))
		}

		plans = append(plans, Plan{
			Tier:        tier,
			Name:        d.Name,
			Description: d.Description,
			Limits:      limits,
			Features:    features,
			Price:       d.Price,
		})
	}

	catalog, err := NewCatalog(plans...)
	if err != nil {
		return Catalog{}, errors.Join(ErrFailedToLoadCatalog, err)
	}
	return catalog, nil
}
