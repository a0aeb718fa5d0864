package web

import (
	"encoding/json"
	"net/http"
)

// Response wraps http.ResponseWriter with the JSON helpers the demo handlers
// use.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

type envelope map[string]any

// JSON sends a JSON response.
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Error sends JSON: {"error": msg}
func (res *Response) Error(status int, msg string) {
	res.JSON(status, envelope{"error": msg})
}

// NotFound sends 404 JSON: {"error": msg}
func (res *Response) NotFound(msg string) {
	res.Error(http.StatusNotFound, msg)
}
