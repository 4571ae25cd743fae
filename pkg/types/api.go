package types

// HealthResponse is returned by GET /.
type HealthResponse struct {
	// example: online
	Status string `json:"status" example:"online"`
	// example: House Price Prediction API is active.
	Message string `json:"message" example:"House Price Prediction API is active."`
}

// PredictionResult holds the raw model output and its dollar scaling.
type PredictionResult struct {
	// Raw model output, in units of 100,000 USD.
	// example: 4.526
	Price100kUnits float64 `json:"price_100k_units" example:"4.526"`
	// Raw output multiplied by 100,000 and rounded to cents.
	// example: 452600
	EstimatedValueUSD float64 `json:"estimated_value_usd" example:"452600"`
}

// PredictResponse is returned by POST /predict on success.
type PredictResponse struct {
	// example: success
	Status string `json:"status" example:"success"`
	// Features as extracted from the request; unknown keys are dropped.
	InputFeatures FeatureRecord `json:"input_features"`
	// Prediction for InputFeatures.
	Prediction PredictionResult `json:"prediction"`
}

// ErrorResponse is the JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: Missing required field: 'MedInc'
	Error string `json:"error" example:"Missing required field: 'MedInc'"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Whether a predictor is loaded.
	// example: true
	Ready bool `json:"ready" example:"true"`
	// Loaded model, absent when loading failed.
	Model *ModelInfo `json:"model,omitempty"`
	// Load failure description, if any.
	LoadError string `json:"load_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// Successful predictions served.
	// example: 42
	PredictionsTotal uint64 `json:"predictions_total" example:"42"`
	// Predictions that failed after extraction.
	// example: 1
	PredictionErrorsTotal uint64 `json:"prediction_errors_total" example:"1"`
}
