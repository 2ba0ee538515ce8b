package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterParameters(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name: "no parameters",
			url:  "/api/v1/strings",
		},
		{
			name: "all parameters",
			url:  "/api/v1/strings?is_palindrome=true&min_length=2&max_length=10&word_count=1&contains_character=z",
		},
		{
			name:    "invalid bool",
			url:     "/api/v1/strings?is_palindrome=maybe",
			wantErr: true,
		},
		{
			name:    "non numeric length",
			url:     "/api/v1/strings?min_length=abc",
			wantErr: true,
		},
		{
			name:    "negative length",
			url:     "/api/v1/strings?max_length=-1",
			wantErr: true,
		},
		{
			name:    "multi character contains",
			url:     "/api/v1/strings?contains_character=ab",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			filters, err := ParseFilterParameters(req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.name == "no parameters" {
				assert.True(t, filters.IsEmpty())
			}
		})
	}
}

func TestParseFilterParametersValues(t *testing.T) {
	req := httptest.NewRequest("GET",
		"/api/v1/strings?is_palindrome=false&min_length=3&contains_character=é", nil)

	filters, err := ParseFilterParameters(req)
	require.NoError(t, err)

	require.NotNil(t, filters.IsPalindrome)
	assert.False(t, *filters.IsPalindrome)

	require.NotNil(t, filters.MinLength)
	assert.Equal(t, 3, *filters.MinLength)

	require.NotNil(t, filters.ContainsCharacter)
	assert.Equal(t, "é", *filters.ContainsCharacter, "single rune, not single byte")

	assert.Nil(t, filters.MaxLength)
	assert.Nil(t, filters.WordCount)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, "boom", 400)

	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}
