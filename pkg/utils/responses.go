package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope of every JSON body. Payloads are attached under a
// resource-specific key ("user", "course", "reviews", ...) rather than a
// generic data field.
type Response map[string]any

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func envelope(status bool, message, key string, data any) Response {
	body := Response{
		"status":  status,
		"message": message,
	}
	if key != "" {
		body[key] = data
	}
	return body
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message, key string, data any) {
	ResponseJSON(w, http.StatusOK, envelope(true, message, key, data))
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message, key string, data any) {
	ResponseJSON(w, http.StatusCreated, envelope(true, message, key, data))
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	if errors == nil {
		ResponseJSON(w, http.StatusBadRequest, envelope(false, message, "", nil))
		return
	}
	ResponseJSON(w, http.StatusBadRequest, envelope(false, message, "errors", errors))
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, envelope(false, message, "", nil))
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, envelope(false, message, "", nil))
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, envelope(false, message, "", nil))
}
