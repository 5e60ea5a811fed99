package net

import (
	"encoding/json"
	"net/http"

	perr "leadlens/internal/platform/errors"
)

// Wire is the envelope written by middlewares that sit outside the router
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// Error maps err to a status and envelope, nil maps to a bare 200
func Error(err error, reqID string) (int, Wire) {
	out := Wire{StatusCode: http.StatusOK, RequestID: reqID}
	if err != nil {
		we := perr.WireFrom(err)
		out.StatusCode = perr.HTTPStatus(err)
		out.Code, out.Error = we.Code, we.Message
	}
	out.Status = http.StatusText(out.StatusCode)
	return out.StatusCode, out
}

// WriteError writes the envelope for err and echoes the request id header
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := RequestID(r.Context())
	if reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
	status, body := Error(err, reqID)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
