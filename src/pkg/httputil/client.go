// Package httputil provides HTTP client and server utilities for the
// strlens daemon and CLI, including request/response handling, status
// checking and JSON processing.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"strlens/src/pkg/loggingutil"
)

// HttpResponse is a generic response that includes the parsed data of
// type T. It wraps an HTTP response and provides access to the parsed
// data and any error that occurred during execution or parsing.
type HttpResponse[T any] struct {
	*http.Response
	err  error
	data T
}

// Error returns any error that occurred during request execution or response processing.
func (r *HttpResponse[T]) Error() error {
	return r.err
}

// Data returns the parsed data of type T and any error that occurred.
func (r *HttpResponse[T]) Data() (T, error) {
	return r.data, r.err
}

// GetTyped sends an HTTP GET request and parses the response into the
// specified type T. Any 2xx status is treated as success; other status
// codes surface the server's JSON error message when available.
func GetTyped[T any](ctx context.Context, client *http.Client, baseURL, path string, queryParams url.Values) *HttpResponse[T] {
	requestPath := path
	if len(queryParams) > 0 {
		requestPath = fmt.Sprintf("%s?%s", path, queryParams.Encode())
	}

	return doTyped[T](ctx, client, http.MethodGet, baseURL+requestPath, nil)
}

// PostTyped sends an HTTP POST request with a JSON body and parses the
// response into the specified type T.
func PostTyped[T any](ctx context.Context, client *http.Client, baseURL, path string, payload interface{}) *HttpResponse[T] {
	var result T
	logger := loggingutil.Get(ctx)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			logger.Error("Failed to marshal JSON payload", "error", err)
			return &HttpResponse[T]{err: fmt.Errorf("failed to marshal JSON payload: %w", err), data: result}
		}
		body = bytes.NewBuffer(data)
	}

	return doTyped[T](ctx, client, http.MethodPost, baseURL+path, body)
}

// DeleteTyped sends an HTTP DELETE request and parses the response into
// the specified type T.
func DeleteTyped[T any](ctx context.Context, client *http.Client, baseURL, path string) *HttpResponse[T] {
	return doTyped[T](ctx, client, http.MethodDelete, baseURL+path, nil)
}

// doTyped executes a request and decodes the JSON response body into T.
// An empty body (e.g. 204 No Content) leaves the zero value of T.
func doTyped[T any](ctx context.Context, client *http.Client, method, fullURL string, reqBody io.Reader) *HttpResponse[T] {
	var result T
	logger := loggingutil.Get(ctx)

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		logger.Error("Failed to create HTTP request", "error", err, "url", fullURL, "method", method)
		return &HttpResponse[T]{err: fmt.Errorf("failed to create request: %w", err), data: result}
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("Failed to connect to server", "error", err, "url", req.URL.String(), "method", req.Method)
		return &HttpResponse[T]{err: fmt.Errorf("failed to connect to server: %w", err), data: result}
	}
	defer CloseBodyWithContext(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("HTTP request failed with non-2xx status",
			"status", resp.Status,
			"status_code", resp.StatusCode,
			"url", req.URL.String(),
			"method", req.Method)
		return &HttpResponse[T]{
			Response: resp,
			err:      responseError(resp),
			data:     result,
		}
	}

	if resp.StatusCode == http.StatusNoContent {
		return &HttpResponse[T]{Response: resp, data: result}
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Error("Failed to parse JSON response",
			"error", err,
			"url", req.URL.String(),
			"method", req.Method)
		return &HttpResponse[T]{
			Response: resp,
			err:      fmt.Errorf("failed to parse JSON response: %w", err),
			data:     result,
		}
	}

	return &HttpResponse[T]{Response: resp, data: result}
}

// responseError builds an error from a non-2xx response, preferring the
// server's own JSON error message over the bare status line.
func responseError(resp *http.Response) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("server returned error: %s", errResp.Error)
	}
	return fmt.Errorf("server returned error: %s", resp.Status)
}

// GetJSON makes a GET request and returns the parsed JSON response of type T.
func GetJSON[T any](ctx context.Context, client *http.Client, baseURL, path string, queryParams url.Values) (T, error) {
	resp := GetTyped[T](ctx, client, baseURL, path, queryParams)
	return resp.Data()
}

// PostJSON makes a POST request with a JSON body and returns the parsed JSON response of type T.
func PostJSON[T any](ctx context.Context, client *http.Client, baseURL, path string, payload interface{}) (T, error) {
	resp := PostTyped[T](ctx, client, baseURL, path, payload)
	return resp.Data()
}

// DeleteJSON makes a DELETE request and returns the parsed JSON response of type T.
func DeleteJSON[T any](ctx context.Context, client *http.Client, baseURL, path string) (T, error) {
	resp := DeleteTyped[T](ctx, client, baseURL, path)
	return resp.Data()
}
