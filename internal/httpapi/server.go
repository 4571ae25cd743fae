package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"housepriced/internal/features"
	"housepriced/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Health() types.HealthResponse
	Ready() bool
	Status() types.StatusResponse
	Predict(ctx context.Context, rec types.FeatureRecord) (types.PredictResponse, error)
}

// NewMux builds the router serving svc.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(corsOptions()))
	}

	r.Get("/", handleHealth(svc))
	r.Post("/predict", handlePredict(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", handleReady(svc))
	r.Get("/status", handleStatus(svc))

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// handleHealth godoc
//
// @Summary      Health check
// @Description  Fixed payload; does not reflect whether the model loaded.
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse
// @Router       / [get]
func handleHealth(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Health())
	}
}

// handlePredict godoc
//
// @Summary      Predict a house price
// @Description  Extracts the six required features and returns the model estimate.
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        body  body      types.FeatureRecord  true  "Feature record; extra keys are ignored"
// @Success      200   {object}  types.PredictResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /predict [post]
func handlePredict(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)
		if lvl >= LevelDebug && zlog != nil {
			zlog.Debug().Str("path", r.URL.Path).Str("request_id", middleware.GetReqID(r.Context())).Msg("predict start")
		}
		status, err := servePredict(w, r, svc, lvl)
		logPredictEnd(r, lvl, status, start, err)
	}
}

// handleReady godoc
//
// @Summary      Readiness
// @Description  200 when a model is loaded, 503 otherwise.
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "ready"
// @Failure      503  {string}  string  "model not loaded"
// @Router       /readyz [get]
func handleReady(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model not loaded"))
	}
}

// handleStatus godoc
//
// @Summary      Service status
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func handleStatus(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	}
}

// servePredict handles one predict request and returns the status written.
// A missing field is the only client error; every other failure is a 500
// carrying the underlying error text.
func servePredict(w http.ResponseWriter, r *http.Request, svc Service, lvl LogLevel) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fail(w, http.StatusInternalServerError, err)
	}
	obj, err := features.ParseObject(body)
	if err != nil {
		return fail(w, http.StatusInternalServerError, err)
	}
	rec, err := features.Extract(obj)
	if err != nil {
		if features.IsMissingField(err) {
			return fail(w, http.StatusBadRequest, err)
		}
		return fail(w, http.StatusInternalServerError, err)
	}
	if lvl >= LevelDebug && zlog != nil {
		if b, mErr := json.Marshal(rec); mErr == nil {
			zlog.Debug().RawJSON("features", b).Msg("predict features")
		}
	}
	resp, err := svc.Predict(r.Context(), rec)
	if err != nil {
		if he, ok := err.(HTTPError); ok {
			return fail(w, he.StatusCode(), err)
		}
		return fail(w, http.StatusInternalServerError, err)
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

func fail(w http.ResponseWriter, status int, err error) (int, error) {
	writeJSONError(w, status, err.Error())
	return status, err
}

func corsOptions() cors.Options {
	methods := corsAllowedMethods
	if len(methods) == 0 {
		methods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}
	headers := corsAllowedHeaders
	if len(headers) == 0 {
		headers = []string{"Content-Type"}
	}
	return cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: methods,
		AllowedHeaders: headers,
		MaxAge:         300,
	}
}
