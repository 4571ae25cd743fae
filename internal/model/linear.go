package model

func compileLinear(a Artifact, idx []int) (func([]float64) float64, error) {
	if len(a.Coefficients) != len(idx) {
		return nil, invalidf("linear: %d coefficients for %d features", len(a.Coefficients), len(idx))
	}
	if len(a.Trees) > 0 {
		return nil, invalidf("linear: unexpected trees")
	}
	coef := append([]float64(nil), a.Coefficients...)
	cols := append([]int(nil), idx...)
	intercept := a.Intercept
	return func(x []float64) float64 {
		y := intercept
		for i, c := range cols {
			y += coef[i] * x[c]
		}
		return y
	}, nil
}
