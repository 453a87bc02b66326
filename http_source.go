package validation

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FromRequest builds a Validator from an HTTP request: query
// parameters first, then the body: form values for url-encoded
// requests, top-level JSON scalars when the Content-Type is
// application/json. Body values win over query values on key
// collision. Repeated keys keep their first value; the scalar value
// model has no room for arrays.
//
// The body is restored on the request after reading, so downstream
// handlers can consume it again.
func FromRequest(r *http.Request) (*Validator, error) {
	data := Data{}

	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			data[key] = values[0]
		}
	}

	switch mediaType(r.Header.Get("Content-Type")) {
	case ContentTypeApplicationJSON:
		body, err := restoreBody(r)
		if err != nil {
			return nil, err
		}
		for key, value := range jsonData(body) {
			data[key] = value
		}
	case ContentTypeFormURLEncoded:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parsing form body: %w", err)
		}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				data[key] = values[0]
			}
		}
	}

	return New(data), nil
}

// restoreBody reads the full request body and puts a fresh reader
// back on the request.
func restoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// mediaType strips any parameters ("; charset=...") off a
// Content-Type header value.
func mediaType(contentType string) string {
	t, _, _ := strings.Cut(contentType, ContentTypeDelimiter)
	return strings.TrimSpace(t)
}
