package handler

import (
	"encoding/json"
	"errors"
	stdhttp "net/http"

	"qa_ai_service/internal/service/qa"
)

// error body shared by all handlers
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewQAHandler binds GET /qa to the QA service. The question arrives as a
// query parameter: absent means a client error before the service runs, while
// a present-but-empty value is passed through as-is.
func NewQAHandler(svc qa.Service) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		values, ok := r.URL.Query()["question"]
		if !ok || len(values) == 0 {
			writeJSON(w, stdhttp.StatusBadRequest, errorResponse{
				Error:   "validation_error",
				Details: "question query parameter is required",
			})
			return
		}
		question := values[0]

		out, err := svc.Ask(r.Context(), question)
		if err != nil {
			writeJSON(w, statusFromError(err), errorResponse{
				Error:   "completion_failed",
				Details: err.Error(),
			})
			return
		}

		writeJSON(w, stdhttp.StatusOK, out)
	}
}

// statusFromError maps failures to HTTP codes: timeouts get 504, everything
// else stays a plain 500.
func statusFromError(err error) int {
	if err == nil {
		return stdhttp.StatusOK
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return stdhttp.StatusGatewayTimeout
	}
	return stdhttp.StatusInternalServerError
}

func writeJSON(w stdhttp.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
