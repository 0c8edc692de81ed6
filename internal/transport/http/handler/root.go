package handler

import (
	stdhttp "net/http"

	DTO_http "qa_ai_service/internal/DTO/http"
)

// NewRootHandler serves the static greeting. No inputs, no side effects.
func NewRootHandler() stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		writeJSON(w, stdhttp.StatusOK, DTO_http.Greeting{Hello: "World"})
	}
}
