package criteo

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents common query options for list endpoints. Criteo
// paginates with zero-based pageIndex/pageSize.
type QueryParams struct {
	PageIndex int
	PageSize  int

	// Filters maps a query key to one or more values; multiple values are
	// joined with commas the way the API expects.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPageIndex sets the zero-based page index.
func (q *QueryParams) WithPageIndex(index int) *QueryParams {
	q.PageIndex = index

	return q
}

// WithPageSize sets the page size.
func (q *QueryParams) WithPageSize(size int) *QueryParams {
	q.PageSize = size

	return q
}

// WithFilter adds a filter value for the given key.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the params to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.PageIndex > 0 {
		values.Set("pageIndex", strconv.Itoa(q.PageIndex))
	}

	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	for key, vals := range q.Filters {
		if len(vals) > 0 {
			values.Set(key, strings.Join(vals, ","))
		}
	}

	return values
}
