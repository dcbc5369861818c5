// SPDX-License-Identifier: MIT
// Package: lvfuzzy/config
//
// mapper.go — DTO validation and mapping onto domain builders and
// fuzzy constructors. Every error names its field path.

package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvfuzzy/domain"
	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// Document is a mapped definitions file: a concrete domain and the sets
// to evaluate over it, in file order.
type Document struct {
	Domain []float64
	Sets   []fuzzy.Set
}

// Set returns the first set titled title.
func (d Document) Set(title string) (fuzzy.Set, bool) {
	for _, s := range d.Sets {
		if s.Title() == title {
			return s, true
		}
	}

	return nil, false
}

// constructor builds one set family from positional params.
type constructor struct {
	params []string
	build  func(title string, p []float64) (fuzzy.Set, error)
}

var constructors = map[fuzzy.Kind]constructor{
	fuzzy.KindTriangular: {
		params: []string{"a", "b", "c"},
		build: func(t string, p []float64) (fuzzy.Set, error) {
			return asSet(fuzzy.NewTriangular(t, p[0], p[1], p[2]))
		},
	},
	fuzzy.KindTrapezoidal: {
		params: []string{"a", "b", "c", "d"},
		build: func(t string, p []float64) (fuzzy.Set, error) {
			return asSet(fuzzy.NewTrapezoidal(t, p[0], p[1], p[2], p[3]))
		},
	},
	fuzzy.KindGaussian: {
		params: []string{"mean", "sd"},
		build: func(t string, p []float64) (fuzzy.Set, error) {
			return asSet(fuzzy.NewGaussian(t, p[0], p[1]))
		},
	},
	fuzzy.KindCombinedGaussian: {
		params: []string{"mean1", "sd1", "mean2", "sd2"},
		build: func(t string, p []float64) (fuzzy.Set, error) {
			return asSet(fuzzy.NewCombinedGaussian(t, p[0], p[1], p[2], p[3]))
		},
	},
	fuzzy.KindBell: {
		params: []string{"width", "slope", "center"},
		build: func(t string, p []float64) (fuzzy.Set, error) {
			return asSet(fuzzy.NewBell(t, p[0], p[1], p[2]))
		},
	},
	fuzzy.KindSigmoid: {
		params: []string{"center", "width"},
		build: func(t string, p []float64) (fuzzy.Set, error) {
			return asSet(fuzzy.NewSigmoid(t, p[0], p[1]))
		},
	},
	fuzzy.KindSShape: {
		params: []string{"foot", "ceiling"},
		build: func(t string, p []float64) (fuzzy.Set, error) {
			return asSet(fuzzy.NewSShape(t, p[0], p[1]))
		},
	},
	fuzzy.KindZShape: {
		params: []string{"foot", "ceiling"},
		build: func(t string, p []float64) (fuzzy.Set, error) {
			return asSet(fuzzy.NewZShape(t, p[0], p[1]))
		},
	},
	fuzzy.KindPiShape: {
		params: []string{"leftFoot", "leftCeiling", "rightFoot", "rightCeiling"},
		build: func(t string, p []float64) (fuzzy.Set, error) {
			return asSet(fuzzy.NewPiShape(t, p[0], p[1], p[2], p[3]))
		},
	},
}

// asSet keeps a nil interface on error instead of a typed nil pointer.
func asSet(s fuzzy.Set, err error) (fuzzy.Set, error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ParamNames lists the positional parameter names expected for k.
func ParamNames(k fuzzy.Kind) ([]string, bool) {
	c, ok := constructors[k]
	if !ok {
		return nil, false
	}

	return append([]string(nil), c.params...), true
}

// MapDocument validates dto and builds the domain and sets it describes.
// path only decorates errors and may be empty.
func MapDocument(path string, dto YAMLDocument) (Document, error) {
	xs, err := mapDomain(path, dto.Domain)
	if err != nil {
		return Document{}, err
	}
	if len(dto.Sets) == 0 {
		return Document{}, invalidField(path, "sets", "at least one set is required")
	}

	doc := Document{Domain: xs, Sets: make([]fuzzy.Set, 0, len(dto.Sets))}
	seen := make(map[string]int, len(dto.Sets))
	for i, ys := range dto.Sets {
		prefix := fmt.Sprintf("sets[%d]", i)
		title := strings.TrimSpace(ys.Title)
		if title == "" {
			return Document{}, invalidField(path, prefix+".title", "title is required")
		}
		if j, dup := seen[title]; dup {
			return Document{}, invalidField(path, prefix+".title", fmt.Sprintf("title %q already used by sets[%d]", title, j))
		}
		seen[title] = i

		s, err := mapSet(path, prefix, title, ys)
		if err != nil {
			return Document{}, err
		}
		doc.Sets = append(doc.Sets, s)
	}

	return doc, nil
}

func mapSet(path, prefix, title string, ys YAMLSet) (fuzzy.Set, error) {
	kind, ok := fuzzy.ParseKind(strings.ToLower(strings.TrimSpace(ys.Kind)))
	if !ok {
		return nil, fieldCause(path, prefix+".kind", fmt.Errorf("%q: %w", ys.Kind, ErrUnknownKind))
	}
	c := constructors[kind]
	if len(ys.Params) != len(c.params) {
		return nil, invalidField(path, prefix+".params", fmt.Sprintf(
			"%s takes %d params (%s), got %d",
			kind, len(c.params), strings.Join(c.params, ", "), len(ys.Params)))
	}

	s, err := c.build(title, ys.Params)
	if err != nil {
		return nil, fieldCause(path, prefix+".params", err)
	}

	return s, nil
}

func mapDomain(path string, yd YAMLDomain) ([]float64, error) {
	var opts []domain.Option
	if yd.Precision != nil {
		p := *yd.Precision
		if p < 0 || p > domain.MaxPrecision {
			return nil, invalidField(path, "domain.precision", fmt.Sprintf("must be in [0,%d], got %d", domain.MaxPrecision, p))
		}
		opts = append(opts, domain.WithPrecision(p))
	}
	if yd.Endpoint != nil {
		opts = append(opts, domain.WithEndpoint(*yd.Endpoint))
	}

	if len(yd.Points) > 0 {
		if yd.Start != nil || yd.Stop != nil || yd.N != 0 || yd.Step != 0 {
			return nil, invalidField(path, "domain.points", "points cannot be combined with start/stop/n/step")
		}

		return domain.Points(yd.Points...), nil
	}

	if yd.Start == nil || yd.Stop == nil {
		return nil, invalidField(path, "domain", "either points or both start and stop are required")
	}

	var (
		xs    []float64
		err   error
		field string
	)
	switch {
	case yd.N != 0 && yd.Step != 0:
		return nil, invalidField(path, "domain", "n and step are mutually exclusive")
	case yd.N != 0:
		field = "domain.n"
		xs, err = domain.Linspace(*yd.Start, *yd.Stop, yd.N, opts...)
	case yd.Step != 0:
		field = "domain.step"
		xs, err = domain.Arange(*yd.Start, *yd.Stop, yd.Step, opts...)
	default:
		return nil, invalidField(path, "domain", "one of n or step is required")
	}
	if err != nil {
		return nil, fieldCause(path, field, err)
	}

	return xs, nil
}
