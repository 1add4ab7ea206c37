package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ascend-local-store/internal/model"
	"ascend-local-store/internal/service"
	"ascend-local-store/pkg/apierror"
	"ascend-local-store/pkg/response"
)

// CatalogHandler handles catalog-related HTTP requests.
type CatalogHandler struct {
	catalog  *service.CatalogService
	importer *service.Importer
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *service.CatalogService, importer *service.Importer) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, importer: importer}
}

// Hydrate handles GET /api/v1/catalog
//
// Without a category filter this is the boot read path: products come from
// the store when present, otherwise the bundled defaults are served and
// seeded. The meta.source field reports which happened.
func (h *CatalogHandler) Hydrate(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		products, err := h.catalog.ByCategory(r.Context(), category)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSONWithMeta(w, http.StatusOK, products, int64(len(products)), "")
		return
	}

	products, source := h.catalog.Hydrate(r.Context())
	response.JSONWithMeta(w, http.StatusOK, products, int64(len(products)), string(source))
}

// BySlug handles GET /api/v1/catalog/slug/{slug}
func (h *CatalogHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		response.Error(w, apierror.BadRequest("slug is required"))
		return
	}

	product, err := h.catalog.BySlug(r.Context(), slug)
	if err != nil {
		response.Error(w, err)
		return
	}
	if product == nil {
		response.Error(w, apierror.NotFound("no product with slug "+slug))
		return
	}

	response.OK(w, product)
}

// Persist handles PUT /api/v1/catalog
func (h *CatalogHandler) Persist(w http.ResponseWriter, r *http.Request) {
	var products []model.Product
	if err := json.NewDecoder(r.Body).Decode(&products); err != nil {
		response.Error(w, apierror.BadRequest("invalid product list"))
		return
	}
	defer r.Body.Close()

	if err := h.catalog.Persist(r.Context(), products); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"status": "cached",
		"count":  len(products),
	})
}

// Import handles POST /api/v1/catalog/import
//
// The body is raw CSV; the column mapping is auto-guessed from the header
// row. Mapping files are a CLI concern.
func (h *CatalogHandler) Import(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	report, err := h.importer.ImportCSV(r.Context(), r.Body, nil, nil)
	if err != nil {
		response.Error(w, apierror.BadRequest(err.Error()))
		return
	}

	response.OK(w, report)
}

// Reset handles POST /api/v1/catalog/reset
func (h *CatalogHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Reset(r.Context()); err != nil {
		response.Error(w, err)
		return
	}

	count, err := h.catalog.Count(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"status": "reset",
		"count":  count,
	})
}

// Clear handles DELETE /api/v1/catalog
func (h *CatalogHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Clear(r.Context()); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

// Stats handles GET /api/v1/catalog/stats
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	count, err := h.catalog.Count(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"product_count": count,
	})
}
