package model

import "housepriced/internal/features"

// compiledNode mirrors Node with the feature name resolved to a column.
type compiledNode struct {
	col         int
	threshold   float64
	left, right int
	leaf        bool
	value       float64
}

func compileEnsemble(a Artifact, idx []int) (func([]float64) float64, error) {
	if len(a.Trees) == 0 {
		return nil, invalidf("tree_ensemble: no trees")
	}
	if len(a.Coefficients) > 0 {
		return nil, invalidf("tree_ensemble: unexpected coefficients")
	}
	agg := a.Aggregation
	if agg == "" {
		agg = AggregateSum
	}
	scale := 1.0
	switch agg {
	case AggregateSum:
		if a.LearningRate < 0 {
			return nil, invalidf("tree_ensemble: negative learning_rate")
		}
		if a.LearningRate > 0 {
			scale = a.LearningRate
		}
	case AggregateMean:
		if a.LearningRate != 0 && a.LearningRate != 1 {
			return nil, invalidf("tree_ensemble: learning_rate applies to sum aggregation only")
		}
		scale = 1 / float64(len(a.Trees))
	default:
		return nil, invalidf("tree_ensemble: unsupported aggregation %q", a.Aggregation)
	}

	allowed := make(map[string]int, len(a.Features))
	for i, name := range a.Features {
		allowed[name] = idx[i]
	}
	trees := make([][]compiledNode, len(a.Trees))
	for t, tree := range a.Trees {
		nodes, err := compileTree(t, tree, allowed)
		if err != nil {
			return nil, err
		}
		trees[t] = nodes
	}
	base := a.BaseScore
	return func(x []float64) float64 {
		sum := 0.0
		for _, nodes := range trees {
			sum += walk(nodes, x)
		}
		return base + scale*sum
	}, nil
}

// compileTree requires every child index to be greater than its parent's,
// which rules out cycles and guarantees walk terminates.
func compileTree(ti int, t Tree, allowed map[string]int) ([]compiledNode, error) {
	if len(t.Nodes) == 0 {
		return nil, invalidf("tree %d: empty", ti)
	}
	out := make([]compiledNode, len(t.Nodes))
	for i, n := range t.Nodes {
		if n.Leaf {
			out[i] = compiledNode{leaf: true, value: n.Value}
			continue
		}
		col, ok := allowed[n.Feature]
		if !ok {
			if features.IsKnown(n.Feature) {
				return nil, invalidf("tree %d node %d: feature %q not declared in features", ti, i, n.Feature)
			}
			return nil, invalidf("tree %d node %d: unknown feature %q", ti, i, n.Feature)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return nil, invalidf("tree %d node %d: child index %d out of range", ti, i, child)
			}
		}
		out[i] = compiledNode{col: col, threshold: n.Threshold, left: n.Left, right: n.Right}
	}
	return out, nil
}

func walk(nodes []compiledNode, x []float64) float64 {
	i := 0
	for {
		n := nodes[i]
		if n.leaf {
			return n.value
		}
		if x[n.col] <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}
