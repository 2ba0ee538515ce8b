// Package httputil provides HTTP client and server utilities for the
// strlens daemon and CLI, including error handling utilities and
// response processing.
package httputil

import (
	"context"
	"net/http"

	"strlens/src/pkg/loggingutil"
)

// CloseBodyWithContext safely closes an HTTP response body and logs any
// error that occurs during closing. Designed for defer statements after
// HTTP requests.
func CloseBodyWithContext(ctx context.Context, resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}

	if err := resp.Body.Close(); err != nil {
		// We don't want to return the error from a deferred function
		// as it would mask the main function's return values.
		logger := loggingutil.Get(ctx)
		logger.Warn("Error closing response body", "error", err)
	}
}

// CloseBody safely closes an HTTP response body without requiring a
// context. It uses a default logger for errors.
func CloseBody(resp *http.Response) {
	CloseBodyWithContext(context.Background(), resp)
}
