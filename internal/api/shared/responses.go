package shared

import (
	"net/http"

	"github.com/go-chi/render"
)

// TraceIDHeader carries the request trace ID on every response.
const TraceIDHeader = "X-Trace-ID"

// MessageResponse is the body of every failure response.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps a single entity as {"data": ...}.
type DataResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, data)
}

// RespondWithData writes {"data": data} with status 200.
func RespondWithData(w http.ResponseWriter, r *http.Request, data any) {
	RespondWithJSON(w, r, http.StatusOK, DataResponse{Data: data})
}
