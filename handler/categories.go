package handler

import (
	"net/http"

	"github.com/jellydator/ttlcache/v3"
	"github.com/vinaysurtani/Trivia-API/data"
)

// categoryMap returns the string-keyed id-to-type mapping of all
// categories, serving it from the cache when possible. Categories are seed
// data, so a short TTL is the only invalidation needed. An empty store is
// never cached: a mapping may appear after seeding.
func (h *Handler) categoryMap() (map[string]string, error) {
	if item := h.cache.Get("categories"); item != nil {
		return item.Value(), nil
	}
	categories, err := h.service.ListCategories()
	if err != nil {
		return nil, err
	}
	m := data.CategoryMap(categories)
	if len(m) > 0 {
		h.cache.Set("categories", m, ttlcache.DefaultTTL)
	}
	return m, nil
}

// listCategoriesHandler returns all categories as an id-to-type mapping.
// Zero categories in the store is a not-found condition.
func (h *Handler) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryMap()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	if len(categories) == 0 {
		h.notFoundResponse(w, r)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"success": true, "categories": categories}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
