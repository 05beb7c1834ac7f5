package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"bankocr/pkg/contextx"
	"bankocr/pkg/errcodes"
	"bankocr/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

// Coder is implemented by errors that carry an application error code.
type Coder interface {
	ErrorCode() failure.ErrorCode
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var statusByCode = map[failure.ErrorCode]int{
	errcodes.ValidationError:    http.StatusBadRequest,
	errcodes.MalformedRow:       http.StatusBadRequest,
	errcodes.MalformedSeparator: http.StatusBadRequest,
	errcodes.InvalidBlockLength: http.StatusBadRequest,
	errcodes.EmptyInput:         http.StatusBadRequest,
	errcodes.InvalidNumber:      http.StatusBadRequest,
	errcodes.NotFound:           http.StatusNotFound,
	errcodes.NotReady:           http.StatusServiceUnavailable,
}

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{
		Code:      errcodes.InternalServerError.String(),
		Message:   http.StatusText(http.StatusInternalServerError),
		SupportID: supportID(ctx),
	}

	status := http.StatusInternalServerError

	var coder Coder
	if errors.As(err, &coder) {
		response.Code = coder.ErrorCode().String()
		response.Message = err.Error()

		if s, ok := statusByCode[coder.ErrorCode()]; ok {
			status = s
		}
	}

	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger(ctx).Error("error", logx.Error(err))
	} else {
		logger(ctx).Warn("error", logx.Error(err))
	}

	JSON(ctx, w, status, response)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
