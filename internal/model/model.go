// Package model loads the pre-trained regression artifact that backs the
// prediction service and evaluates it in process.
//
// An artifact is a JSON, YAML or TOML document describing either a linear
// model or an ensemble of regression trees. Loaded models are immutable and
// safe for concurrent use.
package model

import (
	"context"
	"fmt"
	"math"

	"housepriced/pkg/types"
)

// Predictor maps feature records to scalar estimates, one per record and in
// the same order.
type Predictor interface {
	Predict(ctx context.Context, records []types.FeatureRecord) ([]float64, error)
}

// Supported artifact kinds.
const (
	KindLinear       = "linear"
	KindTreeEnsemble = "tree_ensemble"
)

// Tree ensemble aggregation modes.
const (
	AggregateSum  = "sum"  // boosted trees: base_score + learning_rate * sum(trees)
	AggregateMean = "mean" // random forest: base_score + mean(trees)
)

// Artifact is the on-disk representation of a model.
type Artifact struct {
	Kind     string   `json:"kind" yaml:"kind" toml:"kind"`
	Features []string `json:"features" yaml:"features" toml:"features"`

	// linear
	Intercept    float64   `json:"intercept,omitempty" yaml:"intercept,omitempty" toml:"intercept,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty" yaml:"coefficients,omitempty" toml:"coefficients,omitempty"`

	// tree_ensemble
	BaseScore    float64 `json:"base_score,omitempty" yaml:"base_score,omitempty" toml:"base_score,omitempty"`
	Aggregation  string  `json:"aggregation,omitempty" yaml:"aggregation,omitempty" toml:"aggregation,omitempty"`
	LearningRate float64 `json:"learning_rate,omitempty" yaml:"learning_rate,omitempty" toml:"learning_rate,omitempty"`
	Trees        []Tree  `json:"trees,omitempty" yaml:"trees,omitempty" toml:"trees,omitempty"`
}

// Tree is a regression tree stored as a flat node array rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// Node is a split or a leaf. Split nodes send x <= Threshold to Left.
type Node struct {
	Feature   string  `json:"feature,omitempty" yaml:"feature,omitempty" toml:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty" toml:"threshold,omitempty"`
	Left      int     `json:"left,omitempty" yaml:"left,omitempty" toml:"left,omitempty"`
	Right     int     `json:"right,omitempty" yaml:"right,omitempty" toml:"right,omitempty"`
	Leaf      bool    `json:"leaf,omitempty" yaml:"leaf,omitempty" toml:"leaf,omitempty"`
	Value     float64 `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

// Model is a compiled, read-only artifact.
type Model struct {
	info types.ModelInfo
	eval func(x []float64) float64
}

// Info describes the model.
func (m *Model) Info() types.ModelInfo {
	info := m.info
	info.Features = append([]string(nil), m.info.Features...)
	return info
}

// Predict evaluates every record. It stops early if ctx is done.
func (m *Model) Predict(ctx context.Context, records []types.FeatureRecord) ([]float64, error) {
	out := make([]float64, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		y := m.eval(rec.Vector())
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("record %d: model produced a non-finite value", i)
		}
		out = append(out, y)
	}
	return out, nil
}

// Compile validates a and builds a Model from it. path is informational.
func Compile(a Artifact, path string) (*Model, error) {
	idx, err := featureIndexes(a.Features)
	if err != nil {
		return nil, err
	}
	info := types.ModelInfo{Kind: a.Kind, Path: path, Features: append([]string(nil), a.Features...)}
	switch a.Kind {
	case KindLinear:
		eval, err := compileLinear(a, idx)
		if err != nil {
			return nil, err
		}
		return &Model{info: info, eval: eval}, nil
	case KindTreeEnsemble:
		eval, err := compileEnsemble(a, idx)
		if err != nil {
			return nil, err
		}
		info.Trees = len(a.Trees)
		return &Model{info: info, eval: eval}, nil
	case "":
		return nil, invalidf("missing kind")
	default:
		return nil, invalidf("unsupported kind %q", a.Kind)
	}
}
