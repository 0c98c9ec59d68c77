package models

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Sort orders accepted by list endpoints
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams carries pagination, search, sort and filter options of a list call
type ListParams struct {
	Page    int
	Limit   int
	Search  string
	Sort    string
	Order   string
	Filters map[string]string
}

// Values encodes the params as query parameters. Zero values are omitted.
func (p ListParams) Values() url.Values {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		values.Set("search", s)
	}
	if p.Sort != "" {
		values.Set("sort", p.Sort)
		order := strings.ToLower(p.Order)
		if order != SortAsc && order != SortDesc {
			order = SortAsc
		}
		values.Set("order", order)
	}

	keys := make([]string, 0, len(p.Filters))
	for k := range p.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := p.Filters[k]; v != "" && !reservedListKey(k) {
			values.Set(k, v)
		}
	}
	return values
}

// WithFilter returns a copy of p with one more filter set
func (p ListParams) WithFilter(key, value string) ListParams {
	filters := make(map[string]string, len(p.Filters)+1)
	for k, v := range p.Filters {
		filters[k] = v
	}
	filters[key] = value
	p.Filters = filters
	return p
}

func reservedListKey(key string) bool {
	switch key {
	case "page", "limit", "search", "sort", "order":
		return true
	}
	return false
}
