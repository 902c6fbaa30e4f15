// Package httpx carries the JSON transport helpers shared by the signup API
// handlers. Domain responses (the success acknowledgment and the field error
// envelope) are defined by their owning modules; this package only renders
// them and reports transport-level faults as RFC7807 problem details.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
)

// maxBodyBytes caps request bodies. Signup payloads are three short strings;
// anything near the cap is not a legitimate request.
const maxBodyBytes = 1 << 20

// ErrTrailingBody reports content after the first JSON value in a request
// body.
var ErrTrailingBody = errors.New("httpx: unexpected content after JSON body")

// ProblemDetail represents RFC7807 problem details.
type ProblemDetail struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// JSON writes data with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Problem writes an RFC7807 problem details response.
func Problem(w http.ResponseWriter, status int, title, detail string) {
	JSON(w, status, ProblemDetail{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// DecodeJSON decodes exactly one JSON value from the request body into
// target. The body is size-capped and trailing content is rejected; callers
// treat any returned error as a malformed request.
func DecodeJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(target); err != nil {
		return err
	}
	if dec.More() {
		return ErrTrailingBody
	}
	return nil
}
