package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"bankocr/internal/domain/service/scan"
)

const namespace = "bankocr"

// Результат обработки файла из входящей папки.
const (
	FileProcessed = "processed"
	FileFailed    = "failed"
)

// Recorder пишет метрики сканирования в реестр Prometheus.
type Recorder struct {
	accounts *prometheus.CounterVec
	files    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		accounts: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "accounts_total",
			Help:      "Processed account numbers by stage and outcome.",
		}, []string{"stage", "outcome"}),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "files_total",
			Help:      "Inbox grid files by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Batch processing time by stage.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8), //nolint:mnd
		}, []string{"stage"}),
	}

	reg.MustRegister(r.accounts, r.files, r.duration)

	return r
}

func (r *Recorder) AccountProcessed(mode scan.Mode, outcome string) {
	r.accounts.WithLabelValues(mode.String(), outcome).Inc()
}

func (r *Recorder) BatchProcessed(mode scan.Mode, elapsed time.Duration) {
	r.duration.WithLabelValues(mode.String()).Observe(elapsed.Seconds())
}

func (r *Recorder) FileProcessed(result string) {
	r.files.WithLabelValues(result).Inc()
}
