package probe

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"bankocr/pkg/contextx"
	"bankocr/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Probe answers liveness checks with the application name and version.
type Probe struct {
	state []byte
}

func New(options Options) Probe {
	stateJSON, _ := json.Marshal(options) //nolint:errcheck,errchkjson

	return Probe{
		state: stateJSON,
	}
}

func (p Probe) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(p.state); err != nil {
		logger(r.Context()).Error("w.Write", logx.Error(err))
	}
}
