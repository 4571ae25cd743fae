package predict

import "github.com/prometheus/client_golang/prometheus"

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "housepriced",
			Subsystem: "predict",
			Name:      "predictions_total",
			Help:      "Predictions attempted, by result",
		},
		[]string{"result"},
	)

	predictDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "housepriced",
			Subsystem: "predict",
			Name:      "duration_seconds",
			Help:      "Predictor latency in seconds",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .1},
		},
	)

	modelLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "housepriced",
			Subsystem: "model",
			Name:      "loaded",
			Help:      "1 when a predictor is loaded, 0 otherwise",
		},
	)
)

func init() {
	prometheus.MustRegister(predictionsTotal, predictDuration, modelLoaded)
}
