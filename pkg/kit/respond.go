package kit

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body every handler writes. Detail is either a
// message string or a list of field problems.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, detail any) {
	WriteJSON(w, status, ErrorResponse{Detail: detail})
}

// WriteOK answers 200 with no body.
func WriteOK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}
