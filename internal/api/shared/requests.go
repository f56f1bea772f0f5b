package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxJSONBodyBytes bounds JSON request bodies.
const MaxJSONBodyBytes = 1 << 20

// Global validator instance for reuse
var validate = validator.New()

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes a single JSON object from the request body into v.
// Unknown fields are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxJSONBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// ValidateRequest validates v with its validate struct tags.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}
