package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/balco/tracker/internal/tracker/service"
	"github.com/balco/tracker/internal/tracker/store"
	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/slogx"
	"github.com/balco/tracker/pkg/trackersdk"
)

const (
	msgBadBody     = "request body must be a single JSON object"
	msgUnavailable = "database unavailable, try again later"
	msgServerError = "internal server error"
)

// writeServiceError maps service errors onto responses. Caller mistakes are
// echoed, everything else is logged and answered without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, trackersdk.ErrorResponse{
			Error:  verr.Error(),
			Fields: verr.Fields,
		})
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrUnknownProductType),
		errors.Is(err, service.ErrUnknownColor):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		slogx.FromContext(r.Context()).Warn("store unavailable", slog.Any("error", err))
		httpx.WriteError(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, msgServerError)
	}
}
