package project

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"collabhive-go/internal/domain/catalog"
)

const (
	SearchCacheKeyPrefix = "projects:search:"
	searchCachePattern   = SearchCacheKeyPrefix + "*"

	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

type SortOrder int

const (
	SortDefault SortOrder = iota
	SortCreatedDesc
	SortCreatedAsc
	SortFavoritesDesc
)

// searchKey is the normalized search tuple. Its JSON form is the cache key,
// so field order and slice order must be stable.
type searchKey struct {
	Roles        []string `json:"roles"`
	Complexities []string `json:"complexities"`
	Technologies []string `json:"technologies"`
	SortBy       string   `json:"sortBy"`
	Page         int      `json:"page"`
	Limit        int      `json:"limit"`
}

func normalizeSearch(params SearchParams) searchKey {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	switch {
	case limit <= 0:
		limit = DefaultSearchLimit
	case limit > MaxSearchLimit:
		limit = MaxSearchLimit
	}

	return searchKey{
		Roles:        normalizeSet(params.Roles),
		Complexities: normalizeSet(params.Complexities),
		Technologies: normalizeSet(params.Technologies),
		SortBy:       strings.TrimSpace(params.SortBy),
		Page:         page,
		Limit:        limit,
	}
}

// validate rejects filter values outside the catalog so arbitrary input
// never reaches the store or the cache key space.
func (k searchKey) validate() error {
	for _, role := range k.Roles {
		if !catalog.Roles.Has(role) {
			return ErrInvalidRole
		}
	}
	for _, technology := range k.Technologies {
		if !catalog.Technologies.Has(technology) {
			return ErrInvalidTechnology
		}
	}
	for _, complexity := range k.Complexities {
		if !catalog.Complexities.Has(complexity) {
			return ErrInvalidComplexity
		}
	}
	return nil
}

func (k searchKey) cacheKey() (string, error) {
	raw, err := json.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("encode search key: %w", err)
	}
	return SearchCacheKeyPrefix + string(raw), nil
}

func (k searchKey) query() SearchQuery {
	return SearchQuery{
		Roles:        k.Roles,
		Complexities: k.Complexities,
		Technologies: k.Technologies,
		Order:        sortOrder(k.SortBy),
		Limit:        k.Limit,
		Offset:       (k.Page - 1) * k.Limit,
	}
}

// sortOrder resolves a sort-by key through the catalog. Unknown keys keep
// the store's default order.
func sortOrder(sortBy string) SortOrder {
	label, ok := catalog.SortBy.Label(sortBy)
	if !ok {
		return SortDefault
	}
	switch label {
	case catalog.SortNewest:
		return SortCreatedDesc
	case catalog.SortOldest:
		return SortCreatedAsc
	case catalog.SortMostFavorites:
		return SortFavoritesDesc
	}
	return SortDefault
}

func normalizeSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	sort.Strings(result)
	return result
}
