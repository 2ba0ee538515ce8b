package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"strlens/src/pkg/consts"
	"strlens/src/pkg/httputil"
	"strlens/src/pkg/loggingutil"
	"strlens/src/pkg/query"
	"strlens/src/pkg/store"
)

// Client is the API client for communicating with the strlens daemon
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Health checks if the daemon is running
func (c *Client) Health(ctx context.Context) (bool, error) {
	logger := loggingutil.Get(ctx)
	logger.Debug("Checking daemon health", "baseURL", c.baseURL)

	resp := httputil.GetTyped[map[string]string](ctx, c.httpClient, c.baseURL, consts.APIHealthEndpoint, nil)
	if resp.Error() != nil {
		logger.Debug("Health check failed", "error", resp.Error())
		return false, resp.Error()
	}

	return true, nil
}

// Status checks the status of the daemon
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	logger := loggingutil.Get(ctx)
	logger.Debug("Requesting daemon status", "baseURL", c.baseURL)

	status, err := httputil.GetJSON[StatusResponse](ctx, c.httpClient, c.baseURL, consts.APIStatusEndpoint, nil)
	if err != nil {
		logger.Error("Failed to get daemon status", "error", err)
		return nil, err
	}

	return &status, nil
}

// Analyze submits a string for analysis and storage
func (c *Client) Analyze(ctx context.Context, value string) (*store.Record, error) {
	logger := loggingutil.Get(ctx)
	logger.Debug("Submitting string for analysis")

	rec, err := httputil.PostJSON[store.Record](ctx, c.httpClient, c.baseURL, consts.APIStrings, AnalyzeRequest{Value: value})
	if err != nil {
		logger.Error("Analyze request failed", "error", err)
		return nil, err
	}

	logger.Debug("String analyzed", "id", rec.ID)
	return &rec, nil
}

// Get retrieves the stored record for the exact string value
func (c *Client) Get(ctx context.Context, value string) (*store.Record, error) {
	logger := loggingutil.Get(ctx)
	logger.Debug("Fetching string record")

	rec, err := httputil.GetJSON[store.Record](ctx, c.httpClient, c.baseURL, consts.APIStringsSubtree+url.PathEscape(value), nil)
	if err != nil {
		logger.Error("Fetch request failed", "error", err)
		return nil, err
	}

	return &rec, nil
}

// Delete removes the stored record for the given string value
func (c *Client) Delete(ctx context.Context, value string) error {
	logger := loggingutil.Get(ctx)
	logger.Debug("Deleting string record")

	_, err := httputil.DeleteJSON[struct{}](ctx, c.httpClient, c.baseURL, consts.APIStringsSubtree+url.PathEscape(value))
	if err != nil {
		logger.Error("Delete request failed", "error", err)
		return err
	}

	return nil
}

// List retrieves stored records matching the given structured filters
func (c *Client) List(ctx context.Context, filters query.FilterSet) (*ListResponse, error) {
	logger := loggingutil.Get(ctx)
	logger.Debug("Listing string records")

	values := url.Values{}
	if filters.IsPalindrome != nil {
		values.Set(consts.QueryParamIsPalindrome, strconv.FormatBool(*filters.IsPalindrome))
	}
	if filters.MinLength != nil {
		values.Set(consts.QueryParamMinLength, strconv.Itoa(*filters.MinLength))
	}
	if filters.MaxLength != nil {
		values.Set(consts.QueryParamMaxLength, strconv.Itoa(*filters.MaxLength))
	}
	if filters.WordCount != nil {
		values.Set(consts.QueryParamWordCount, strconv.Itoa(*filters.WordCount))
	}
	if filters.ContainsCharacter != nil {
		values.Set(consts.QueryParamContainsCharacter, *filters.ContainsCharacter)
	}

	list, err := httputil.GetJSON[ListResponse](ctx, c.httpClient, c.baseURL, consts.APIStrings, values)
	if err != nil {
		logger.Error("List request failed", "error", err)
		return nil, err
	}

	logger.Debug("List completed", "count", list.Count)
	return &list, nil
}

// Ask runs a natural-language filter query against the daemon
func (c *Client) Ask(ctx context.Context, queryText string) (*QueryResponse, error) {
	logger := loggingutil.Get(ctx)
	logger.Debug("Running natural language query", "query", queryText)

	values := url.Values{}
	values.Set(consts.QueryParamQuery, queryText)

	result, err := httputil.GetJSON[QueryResponse](ctx, c.httpClient, c.baseURL, consts.APIQueryEndpoint, values)
	if err != nil {
		logger.Error("Query request failed", "error", err)
		return nil, err
	}

	logger.Debug("Query completed", "count", result.Count)
	return &result, nil
}
