package response

import (
	"encoding/json"
	"net/http"

	"ascend-local-store/pkg/apierror"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta contains collection metadata.
type Meta struct {
	Total  int64  `json:"total"`
	Source string `json:"source,omitempty"` // "store", "seed" or "fallback"
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := Response{
		Success: true,
		Data:    data,
	}

	_ = json.NewEncoder(w).Encode(response)
}

// JSONWithMeta sends a JSON response with collection metadata.
func JSONWithMeta(w http.ResponseWriter, statusCode int, data interface{}, total int64, source string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Total:  total,
			Source: source,
		},
	}

	_ = json.NewEncoder(w).Encode(response)
}

// Error sends an error response.
func Error(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*apierror.Error)
	if !ok {
		apiErr = apierror.FromStorage(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode)
	w.Write(apiErr.ToJSON())
}

// NoContent sends a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Created sends a 201 Created response with the created resource.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

// OK sends a 200 OK response.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}
