package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ascend-local-store/internal/model"
	"ascend-local-store/internal/repository"
	"ascend-local-store/internal/service"
	"ascend-local-store/pkg/apierror"
	"ascend-local-store/pkg/response"
)

// SettingsHandler handles preference persistence. The language and theme
// keys route through the session so they get validated; anything else is
// stored as an opaque payload.
type SettingsHandler struct {
	settings repository.SettingsRepository
	session  *service.Session
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings repository.SettingsRepository, session *service.Session) *SettingsHandler {
	return &SettingsHandler{settings: settings, session: session}
}

// Get handles GET /api/v1/settings/{key}
//
// Absence is a normal outcome: the data field is null, not an error.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		response.Error(w, apierror.BadRequest("setting key is required"))
		return
	}

	var data json.RawMessage
	h.settings.GetSetting(r.Context(), key, &data)

	response.OK(w, map[string]interface{}{
		"key":  key,
		"data": data,
	})
}

// Set handles PUT /api/v1/settings/{key}
func (h *SettingsHandler) Set(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		response.Error(w, apierror.BadRequest("setting key is required"))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.Error(w, apierror.BadRequest("failed to read request body"))
		return
	}
	defer r.Body.Close()

	var value json.RawMessage
	if err := json.Unmarshal(body, &value); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON value"))
		return
	}

	switch key {
	case model.SettingLanguage:
		var lang string
		if err := json.Unmarshal(value, &lang); err != nil {
			response.Error(w, apierror.BadRequest("language must be a string"))
			return
		}
		if err := h.session.SetLanguage(r.Context(), lang); err != nil {
			respondSettingError(w, err)
			return
		}
	case model.SettingTheme:
		var theme string
		if err := json.Unmarshal(value, &theme); err != nil {
			response.Error(w, apierror.BadRequest("theme must be a string"))
			return
		}
		if err := h.session.SetTheme(r.Context(), theme); err != nil {
			respondSettingError(w, err)
			return
		}
	default:
		if err := h.settings.SetSetting(r.Context(), key, value); err != nil {
			response.Error(w, err)
			return
		}
	}

	response.OK(w, map[string]interface{}{
		"key":    key,
		"status": "saved",
	})
}

// respondSettingError keeps persistence failures distinct from rejected
// values: only the latter are the client's fault.
func respondSettingError(w http.ResponseWriter, err error) {
	var pErr *repository.PersistenceError
	if errors.As(err, &pErr) {
		response.Error(w, err)
		return
	}
	response.Error(w, apierror.BadRequest(err.Error()))
}

// Session handles GET /api/v1/session
func (h *SettingsHandler) Session(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"language": h.session.Language(),
		"theme":    h.session.Theme(),
	})
}
