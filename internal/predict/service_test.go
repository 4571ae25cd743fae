package predict

import (
	"context"
	"errors"
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"housepriced/pkg/types"
)

type fakePredictor struct {
	out   []float64
	err   error
	calls int
	got   []types.FeatureRecord
}

func (f *fakePredictor) Predict(ctx context.Context, recs []types.FeatureRecord) ([]float64, error) {
	f.calls++
	f.got = append([]types.FeatureRecord(nil), recs...)
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

var rec = types.FeatureRecord{MedInc: 8.3, HouseAge: 41, AveRooms: 6.98, AveBedrms: 1.02, Population: 322, AveOccup: 2.56}

func TestPredict_Success(t *testing.T) {
	p := &fakePredictor{out: []float64{4.526}}
	s := New(Config{Predictor: p})
	resp, err := s.Predict(context.Background(), rec)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if p.calls != 1 || len(p.got) != 1 || p.got[0] != rec {
		t.Fatalf("predictor called with %+v (%d calls)", p.got, p.calls)
	}
	if resp.Status != "success" || resp.InputFeatures != rec {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Prediction.Price100kUnits != 4.526 || resp.Prediction.EstimatedValueUSD != 452600 {
		t.Fatalf("unexpected prediction: %+v", resp.Prediction)
	}
	if st := s.Status(); st.PredictionsTotal != 1 || st.PredictionErrorsTotal != 0 {
		t.Fatalf("unexpected counters: %+v", st)
	}
}

func TestPredict_NotLoadedCarriesCause(t *testing.T) {
	cause := errors.New("model artifact not found: model/housing_model.json")
	s := New(Config{LoadErr: cause})
	_, err := s.Predict(context.Background(), rec)
	if !IsModelNotLoaded(err) {
		t.Fatalf("expected model-not-loaded, got %v", err)
	}
	if !errors.Is(err, cause) || !strings.Contains(err.Error(), cause.Error()) {
		t.Fatalf("cause lost: %v", err)
	}
	if s.Ready() {
		t.Fatalf("service without predictor reports ready")
	}
	if st := s.Status(); st.PredictionErrorsTotal != 1 || st.LoadError != cause.Error() || st.Ready {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestPredict_PredictorErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	s := New(Config{Predictor: &fakePredictor{err: boom}})
	if _, err := s.Predict(context.Background(), rec); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPredict_WrongOutputCount(t *testing.T) {
	for _, out := range [][]float64{nil, {1, 2}} {
		s := New(Config{Predictor: &fakePredictor{out: out}})
		if _, err := s.Predict(context.Background(), rec); !IsBadOutput(err) {
			t.Fatalf("out=%v: expected bad output error, got %v", out, err)
		}
	}
}

func TestHealth_IgnoresPredictorState(t *testing.T) {
	for _, s := range []*Service{New(Config{}), New(Config{Predictor: &fakePredictor{}})} {
		h := s.Health()
		if h.Status != "online" || h.Message != "House Price Prediction API is active." {
			t.Fatalf("unexpected health: %+v", h)
		}
	}
}

func TestEstimateUSD(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{4.526, 452600},
		{1.234567891, 123456.79},
		{0.00000004, 0},
		{0.00000006, 0.01},
		{-0.123456789, -12345.68},
		// Decimal ties whose binary value sits just below the tie round down.
		{1.115e-5, 1.11},
		{2.675e-5, 2.67},
	}
	for _, c := range cases {
		if got := EstimateUSD(c.raw); got != c.want {
			t.Fatalf("EstimateUSD(%v)=%v want %v", c.raw, got, c.want)
		}
	}
	if got := EstimateUSD(math.MaxFloat64); !math.IsInf(got, 1) {
		t.Fatalf("EstimateUSD(MaxFloat64)=%v want +Inf", got)
	}
}

func TestPredict_OverflowingEstimate(t *testing.T) {
	s := New(Config{Predictor: &fakePredictor{out: []float64{1e305}}})
	_, err := s.Predict(context.Background(), rec)
	if !IsOutOfRange(err) {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
	if st := s.Status(); st.PredictionsTotal != 0 || st.PredictionErrorsTotal != 1 {
		t.Fatalf("unexpected counters: %+v", st)
	}
}

func TestOpen_Lenient(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "missing.json"), false, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("lenient open returned error: %v", err)
	}
	if s.Ready() {
		t.Fatalf("expected not ready")
	}
	if _, err := s.Predict(context.Background(), rec); !IsModelNotLoaded(err) {
		t.Fatalf("expected model-not-loaded, got %v", err)
	}
}

func TestOpen_Strict(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "missing.json"), true, zerolog.New(io.Discard))
	if err == nil || s != nil {
		t.Fatalf("strict open should fail, got service=%v err=%v", s, err)
	}
}

func TestOpen_Loads(t *testing.T) {
	s, err := Open(filepath.Join("testdata", "linear.json"), true, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	st := s.Status()
	if !st.Ready || st.Model == nil || st.Model.Kind != "linear" {
		t.Fatalf("unexpected status: %+v", st)
	}
	resp, err := s.Predict(context.Background(), rec)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got := resp.Prediction.EstimatedValueUSD; got != EstimateUSD(resp.Prediction.Price100kUnits) {
		t.Fatalf("scaled value %v does not match raw %v", got, resp.Prediction.Price100kUnits)
	}
}
