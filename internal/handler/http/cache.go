package http

import (
	"net/http"

	"github.com/congrega/attendance-backend/internal/handler/http/response"
	"github.com/congrega/attendance-backend/internal/pkg/sheetcache"
	"github.com/congrega/attendance-backend/internal/repository/sheets"
	"github.com/go-chi/chi/v5"
)

// CacheHandler exposes manual cache controls for operators: dropping one
// collection after an out-of-band spreadsheet edit, or flushing all.
type CacheHandler interface {
	Invalidate(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type cacheHandlerImpl struct {
	cache *sheetcache.Cache
}

func NewCacheHandler(cache *sheetcache.Cache) CacheHandler {
	return &cacheHandlerImpl{cache: cache}
}

var knownCollections = []string{
	sheets.CollectionMembers,
	sheets.CollectionVisitors,
	sheets.CollectionAttendance,
}

// Invalidate implements CacheHandler.
func (h *cacheHandlerImpl) Invalidate(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	known := false
	for _, name := range knownCollections {
		if name == collection {
			known = true
			break
		}
	}
	if !known {
		response.NotFound(w, "Unknown collection")
		return
	}

	h.cache.Invalidate(collection)
	response.SuccessWithMessage(w, "Cache invalidated", nil)
}

// Clear implements CacheHandler.
func (h *cacheHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	h.cache.Clear()
	response.SuccessWithMessage(w, "Cache cleared", nil)
}
