package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ascend-local-store/internal/repository"
	"ascend-local-store/pkg/apierror"
	"ascend-local-store/pkg/objecturl"
	"ascend-local-store/pkg/response"
	"ascend-local-store/pkg/uid"
)

// maxImageBytes caps uploads; the store keeps blobs verbatim, so oversized
// payloads should be optimized upstream, not here.
const maxImageBytes = 16 << 20

// ImageHandler handles image blob HTTP requests.
type ImageHandler struct {
	images repository.ImageRepository
	urls   *objecturl.Registry
}

// NewImageHandler creates a new image handler.
func NewImageHandler(images repository.ImageRepository, urls *objecturl.Registry) *ImageHandler {
	return &ImageHandler{images: images, urls: urls}
}

// Save handles POST /api/v1/images and POST /api/v1/images/{id}
//
// The body is the raw blob. Without an id in the path one is generated.
// Saving over an existing id overwrites it (upsert semantics).
func (h *ImageHandler) Save(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		id = uid.NewImageID()
	}

	blob, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes+1))
	if err != nil {
		response.Error(w, apierror.BadRequest("failed to read request body"))
		return
	}
	defer r.Body.Close()

	if len(blob) == 0 {
		response.Error(w, apierror.BadRequest("image body is empty"))
		return
	}
	if len(blob) > maxImageBytes {
		response.Error(w, apierror.BadRequest("image exceeds the 16MB limit"))
		return
	}

	mimeType := r.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(blob)
	}
	fileName := r.Header.Get("X-File-Name")

	savedID, err := h.images.SaveImage(r.Context(), blob, id, fileName, mimeType)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, map[string]interface{}{
		"id":   savedID,
		"size": len(blob),
	})
}

// Load handles GET /api/v1/images/{id}
//
// Serves the stored blob with its original MIME type. The object URL minted
// by the repository is revoked once the bytes are written out.
func (h *ImageHandler) Load(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.Error(w, apierror.BadRequest("image id is required"))
		return
	}

	url, err := h.images.LoadImage(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	if url == "" {
		response.Error(w, apierror.NotFound("no image with id "+id))
		return
	}
	defer h.urls.Revoke(url)

	blob, mimeType, ok := h.urls.Resolve(url)
	if !ok {
		response.Error(w, apierror.InternalError("object url expired before serving"))
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}
