package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries the status so clients reading only the body can still
// classify the failure.
type ErrorDetail struct {
	Status  int               `json:"status"`
	Code    string            `json:"code"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := Response{
			Success: false,
			Error: &ErrorDetail{
				Status:  http.StatusInternalServerError,
				Code:    "ENCODING_ERROR",
				Title:   "Encoding error",
				Message: "Failed to encode response",
			},
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created writes 201 with a Location header pointing at the new resource.
func Created(w http.ResponseWriter, location string, data interface{}) {
	if location != "" {
		w.Header().Set("Location", location)
	}
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error responses
func Error(w http.ResponseWriter, detail ErrorDetail) {
	writeJSON(w, detail.Status, Response{
		Success: false,
		Error:   &detail,
	})
}

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	Error(w, ErrorDetail{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Title:   "Bad request",
		Message: message,
		Details: details,
	})
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	Error(w, ErrorDetail{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Title:   "Validation failed",
		Message: "One or more fields are invalid",
		Details: details,
	})
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, ErrorDetail{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Title:   "Not found",
		Message: message,
	})
}
