package rest

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
)

// Response is the success envelope returned by every endpoint.
type Response struct {
	TimeStamp  time.Time   `json:"timeStamp"`
	StatusCode int         `json:"statusCode"`
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

// Fault is the error envelope. ErrorFields is populated only for
// validation failures and carries one message per violated rule.
type Fault struct {
	Timestamp    time.Time      `json:"timestamp"`
	StatusCode   int            `json:"statusCode"`
	ErrorCode    apperrors.Code `json:"errorCode"`
	ErrorMessage string         `json:"errorMessage"`
	ErrorFields  []string       `json:"errorFields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("JSON encoding error: %v", err)
	}
}

func RespondJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, Response{
		TimeStamp:  time.Now().UTC(),
		StatusCode: status,
		Status:     http.StatusText(status),
		Message:    message,
		Data:       data,
	})
}

// RespondError writes the fault mapped from err. Validation failures carry
// their aggregated field messages, everything else just the message.
func RespondError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)
	fault := Fault{
		Timestamp:    time.Now().UTC(),
		StatusCode:   status,
		ErrorCode:    apperrors.CodeOf(err),
		ErrorMessage: err.Error(),
	}
	if verr, ok := apperrors.AsValidation(err); ok {
		fault.ErrorMessage = "invalid fields"
		fault.ErrorFields = verr.Fields
	}
	writeJSON(w, status, fault)
}

// RespondErrorMessage writes a fault with an explicit status and message,
// for transport-level rejections that carry no domain error value.
func RespondErrorMessage(w http.ResponseWriter, status int, code apperrors.Code, message string) {
	writeJSON(w, status, Fault{
		Timestamp:    time.Now().UTC(),
		StatusCode:   status,
		ErrorCode:    code,
		ErrorMessage: message,
	})
}
