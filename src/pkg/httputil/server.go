// Package httputil provides HTTP client and server utilities for the
// strlens daemon and CLI, including request/response handling, status
// checking and JSON processing.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"strlens/src/pkg/consts"
	"strlens/src/pkg/loggingutil"
	"strlens/src/pkg/query"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes JSON response with the proper Content-Type header
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log error but can't really recover at this point
		logger := loggingutil.Get(context.Background())
		logger.Error("Error encoding JSON response", "error", err)
	}
}

// WriteError writes an error response with JSON formatting
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}

// ParseJSONRequest parses the request body into the given target type
func ParseJSONRequest(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// MethodChecker is a helper to check if the HTTP method is allowed
func MethodChecker(w http.ResponseWriter, r *http.Request, allowedMethods ...string) bool {
	for _, method := range allowedMethods {
		if r.Method == method {
			return true
		}
	}

	logger := loggingutil.Get(r.Context())
	logger.Warn("Method not allowed", "method", r.Method, "path", r.URL.Path)
	WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

// ParseFilterParameters parses the structured filter query parameters
// from a list request. Absent parameters leave the corresponding
// filter unset.
func ParseFilterParameters(r *http.Request) (query.FilterSet, error) {
	var filters query.FilterSet
	values := r.URL.Query()

	if v := values.Get(consts.QueryParamIsPalindrome); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return query.FilterSet{}, fmt.Errorf("invalid %s parameter", consts.QueryParamIsPalindrome)
		}
		filters.IsPalindrome = &b
	}

	for _, p := range []struct {
		name   string
		target **int
	}{
		{consts.QueryParamMinLength, &filters.MinLength},
		{consts.QueryParamMaxLength, &filters.MaxLength},
		{consts.QueryParamWordCount, &filters.WordCount},
	} {
		v := values.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return query.FilterSet{}, fmt.Errorf("invalid %s parameter", p.name)
		}
		*p.target = &n
	}

	if v := values.Get(consts.QueryParamContainsCharacter); v != "" {
		if len([]rune(v)) != 1 {
			return query.FilterSet{}, fmt.Errorf("%s must be a single character", consts.QueryParamContainsCharacter)
		}
		filters.ContainsCharacter = &v
	}

	return filters, nil
}
