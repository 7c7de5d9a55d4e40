package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// Request wraps *http.Request with small binding helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// Bind decodes the JSON request body into v.
func (req *Request) Bind(v any) error {
	defer req.raw.Body.Close()
	body, err := io.ReadAll(req.raw.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(body, v)
}

// Query returns a query-string value.
func (req *Request) Query(key string) string {
	return req.raw.URL.Query().Get(key)
}

// BearerToken extracts the token from an Authorization: Bearer header.
func (req *Request) BearerToken() string {
	h := req.raw.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
