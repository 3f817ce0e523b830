package handler

import (
	"log/slog"
	"net/http"

	"github.com/shubhsinghsk/AYLB/internal/domain"
)

// ErrorResponse writes an error response to the client. It maps domain error
// codes to HTTP status codes and never exposes internal detail.
func ErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	op := domain.ErrorOp(err)

	status := ErrorCodeToHTTPStatus(code)

	if status >= 500 {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"code", code,
			"op", op,
			"error", err,
		)
	} else {
		logger.Info("request error",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"code", code,
		)
	}

	http.Error(w, message, status)
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
