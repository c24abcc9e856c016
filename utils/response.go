package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint writes.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// JSON writes the envelope with the given status, message and payload.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Code: status, Message: message, Data: data})
}

// Error writes a data-less error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, message, nil)
}

// ValidationFailed writes the 400 envelope carrying per-field errors.
func ValidationFailed(w http.ResponseWriter, errs []FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(Response{
		Code:    http.StatusBadRequest,
		Message: "Error, validation failed please check again.!",
		Errors:  errs,
	})
}
