// Package predict owns the process-wide predictor and implements the health,
// readiness and prediction operations served over HTTP.
//
//   - service.go: Service type, constructor, Health/Ready/Predict.
//   - startup.go: Open applies the strict or lenient startup policy.
//   - status.go: Status reporting.
//   - errors.go: error types and helpers (IsModelNotLoaded, IsBadOutput).
//   - metrics.go: prediction counters and latency histogram.
//
// The predictor is set once by New and never replaced, so concurrent calls
// share it without locking.
package predict
