package types

// FeatureRecord is the fixed set of block-level housing features the
// predictor consumes. Field order is the order used for serialization and for
// Vector.
type FeatureRecord struct {
	// Median income in the block group, in tens of thousands.
	// example: 8.3252
	MedInc float64 `json:"MedInc" example:"8.3252"`
	// Median house age in the block group.
	// example: 41
	HouseAge float64 `json:"HouseAge" example:"41"`
	// Average number of rooms per household.
	// example: 6.984
	AveRooms float64 `json:"AveRooms" example:"6.984"`
	// Average number of bedrooms per household.
	// example: 1.024
	AveBedrms float64 `json:"AveBedrms" example:"1.024"`
	// Block group population.
	// example: 322
	Population float64 `json:"Population" example:"322"`
	// Average number of household members.
	// example: 2.556
	AveOccup float64 `json:"AveOccup" example:"2.556"`
}

// Vector returns the feature values in declaration order.
func (r FeatureRecord) Vector() []float64 {
	return []float64{r.MedInc, r.HouseAge, r.AveRooms, r.AveBedrms, r.Population, r.AveOccup}
}

// Value returns the value of the named feature.
func (r FeatureRecord) Value(name string) (float64, bool) {
	switch name {
	case "MedInc":
		return r.MedInc, true
	case "HouseAge":
		return r.HouseAge, true
	case "AveRooms":
		return r.AveRooms, true
	case "AveBedrms":
		return r.AveBedrms, true
	case "Population":
		return r.Population, true
	case "AveOccup":
		return r.AveOccup, true
	}
	return 0, false
}

// ModelInfo describes the loaded predictor artifact.
type ModelInfo struct {
	// Model family of the artifact.
	// example: tree_ensemble
	Kind string `json:"kind" example:"tree_ensemble"`
	// Path the artifact was loaded from.
	// example: model/housing_model.json
	Path string `json:"path" example:"model/housing_model.json"`
	// Features consumed by the model, in the order it reads them.
	Features []string `json:"features"`
	// Number of trees (tree ensembles only).
	// example: 100
	Trees int `json:"trees,omitempty" example:"100"`
}
