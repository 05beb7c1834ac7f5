package server

import (
	"net/http"

	"bankocr/pkg/probe"
)

// ReadinessFunc сообщает, завершился ли первый проход по входящей папке.
type ReadinessFunc func() bool

// Server объединяет служебные ручки: проверки живости и готовности, метрики.
type Server struct {
	probe   probe.Probe
	ready   ReadinessFunc
	metrics http.Handler
}

func NewServer(
	healthProbe probe.Probe,
	ready ReadinessFunc,
	metrics http.Handler,
) Server {
	return Server{
		probe:   healthProbe,
		ready:   ready,
		metrics: metrics,
	}
}
