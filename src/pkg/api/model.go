package api

import (
	"time"

	"strlens/src/pkg/query"
	"strlens/src/pkg/store"
)

// AnalyzeRequest represents a request to analyze and store a new string
type AnalyzeRequest struct {
	Value string `json:"value"`
}

// ListResponse represents a filtered listing of stored records.
// FiltersApplied echoes the filters the server actually used so
// callers can see how their request was interpreted.
type ListResponse struct {
	Data           []store.Record  `json:"data"`
	Count          int             `json:"count"`
	FiltersApplied query.FilterSet `json:"filters_applied"`
}

// InterpretedQuery echoes a natural-language query alongside the
// filter set derived from it.
type InterpretedQuery struct {
	Original      string          `json:"original"`
	ParsedFilters query.FilterSet `json:"parsed_filters"`
}

// QueryResponse represents the result of a natural-language filter query
type QueryResponse struct {
	Data             []store.Record   `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

// StatusResponse represents the daemon status
type StatusResponse struct {
	Status      string            `json:"status"`
	Uptime      string            `json:"uptime"`
	StartTime   time.Time         `json:"start_time"`
	RecordCount int               `json:"record_count"`
	Version     string            `json:"version"`
	Config      map[string]string `json:"config"`
}
