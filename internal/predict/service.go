package predict

import (
	"context"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"housepriced/internal/model"
	"housepriced/pkg/types"
)

// Fixed health payload.
const (
	HealthStatus  = "online"
	HealthMessage = "House Price Prediction API is active."
)

// usdPer100k converts model output, expressed in units of $100,000, to dollars.
const usdPer100k = 100000

// Config carries everything Service needs at construction.
type Config struct {
	// Predictor may be nil when loading failed and startup is lenient.
	Predictor model.Predictor
	// Model describes Predictor; optional.
	Model *types.ModelInfo
	// LoadErr is the startup failure, surfaced by Predict and Status.
	LoadErr error
}

type Service struct {
	predictor model.Predictor
	info      *types.ModelInfo
	loadErr   error
	startTime time.Time

	served atomic.Uint64
	failed atomic.Uint64
}

// New constructs a Service. The predictor is fixed for the Service lifetime.
func New(cfg Config) *Service {
	s := &Service{
		predictor: cfg.Predictor,
		loadErr:   cfg.LoadErr,
		startTime: time.Now(),
	}
	if cfg.Model != nil {
		info := *cfg.Model
		info.Features = append([]string(nil), cfg.Model.Features...)
		s.info = &info
	}
	if s.predictor != nil {
		modelLoaded.Set(1)
	} else {
		modelLoaded.Set(0)
	}
	return s
}

// Health returns the fixed liveness payload. It does not consult the predictor.
func (s *Service) Health() types.HealthResponse {
	return types.HealthResponse{Status: HealthStatus, Message: HealthMessage}
}

// Ready reports whether a predictor is loaded.
func (s *Service) Ready() bool { return s.predictor != nil }

// Predict runs the predictor on rec and scales the result to dollars.
func (s *Service) Predict(ctx context.Context, rec types.FeatureRecord) (types.PredictResponse, error) {
	if s.predictor == nil {
		s.fail()
		return types.PredictResponse{}, ErrModelNotLoaded(s.loadErr)
	}
	start := time.Now()
	out, err := s.predictor.Predict(ctx, []types.FeatureRecord{rec})
	predictDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.fail()
		return types.PredictResponse{}, err
	}
	if len(out) != 1 {
		s.fail()
		return types.PredictResponse{}, badOutputError{got: len(out)}
	}
	usd := EstimateUSD(out[0])
	if math.IsNaN(usd) || math.IsInf(usd, 0) {
		s.fail()
		return types.PredictResponse{}, outOfRangeError{raw: out[0]}
	}
	s.served.Add(1)
	predictionsTotal.WithLabelValues("success").Inc()
	return types.PredictResponse{
		Status:        "success",
		InputFeatures: rec,
		Prediction: types.PredictionResult{
			Price100kUnits:    out[0],
			EstimatedValueUSD: usd,
		},
	}, nil
}

func (s *Service) fail() {
	s.failed.Add(1)
	predictionsTotal.WithLabelValues("error").Inc()
}

// EstimateUSD scales a raw prediction to dollars rounded to cents. Rounding
// works on the exact binary value of the dollar amount, ties to even. The
// result is ±Inf when scaling overflows.
func EstimateUSD(raw float64) float64 {
	usd := raw * usdPer100k
	if math.IsNaN(usd) || math.IsInf(usd, 0) {
		return usd
	}
	v, _ := strconv.ParseFloat(strconv.FormatFloat(usd, 'f', 2, 64), 64)
	return v
}
