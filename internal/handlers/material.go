package handlers

import (
	"Fabrika/internal/model"
	"Fabrika/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// MaterialHandler — CRUD справочника материалов.
type MaterialHandler struct {
	Materials *service.MaterialService
	Logger    *zap.SugaredLogger
}

// NewMaterialHandler создаёт хендлер материалов
func NewMaterialHandler(materials *service.MaterialService, logger *zap.SugaredLogger) *MaterialHandler {
	return &MaterialHandler{Materials: materials, Logger: logger}
}

type materialRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type materialResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func toMaterialResponse(m *model.Material) materialResponse {
	return materialResponse{ID: m.ID, Name: m.Name, Description: m.Description}
}

func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req materialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Material create: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "name must not be empty")
		return
	}

	m, err := h.Materials.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			writeDetail(w, http.StatusBadRequest, "Material with this name already exists")
			return
		}
		h.Logger.Errorw("Material create: service error", "name", req.Name, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMaterialResponse(m))
}

func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	ms, err := h.Materials.List(r.Context())
	if err != nil {
		h.Logger.Errorw("Material list: service error", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]materialResponse, 0, len(ms))
	for i := range ms {
		resp = append(resp, toMaterialResponse(&ms[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *MaterialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}

	m, err := h.Materials.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Material not found")
			return
		}
		h.Logger.Errorw("Material get: service error", "id", id, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMaterialResponse(m))
}

func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req materialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Material update: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "name must not be empty")
		return
	}

	m, err := h.Materials.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "Material not found")
		case errors.Is(err, service.ErrDuplicateName):
			writeDetail(w, http.StatusBadRequest, "Material with this name already exists")
		default:
			h.Logger.Errorw("Material update: service error", "id", id, "error", err)
			writeDetail(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toMaterialResponse(m))
}

func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Materials.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Material not found")
			return
		}
		h.Logger.Errorw("Material delete: service error", "id", id, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeDetail(w, http.StatusOK, "Material deleted")
}
