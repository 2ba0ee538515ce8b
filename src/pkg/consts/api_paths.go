package consts

// API endpoint constants
const (
	// API version prefix
	APIPrefix = "/api/v1"

	// Health endpoints
	APIHealthEndpoint = APIPrefix + "/health"

	// Status endpoints
	APIStatusEndpoint = APIPrefix + "/status"

	// String record endpoints
	APIStrings = APIPrefix + "/strings"

	// APIStringsSubtree matches /api/v1/strings/{value}; handlers
	// extract the path-escaped value from the suffix.
	APIStringsSubtree = APIStrings + "/"

	// Natural-language query endpoint
	APIQueryEndpoint = APIPrefix + "/query"
)

// Query parameter keys
const (
	QueryParamQuery             = "q"
	QueryParamIsPalindrome      = "is_palindrome"
	QueryParamMinLength         = "min_length"
	QueryParamMaxLength         = "max_length"
	QueryParamWordCount         = "word_count"
	QueryParamContainsCharacter = "contains_character"
)
