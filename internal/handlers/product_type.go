package handlers

import (
	"Fabrika/internal/model"
	"Fabrika/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ProductTypeHandler — CRUD справочника типов изделий.
type ProductTypeHandler struct {
	ProductTypes *service.ProductTypeService
	Logger       *zap.SugaredLogger
}

// NewProductTypeHandler создаёт хендлер типов изделий
func NewProductTypeHandler(productTypes *service.ProductTypeService, logger *zap.SugaredLogger) *ProductTypeHandler {
	return &ProductTypeHandler{ProductTypes: productTypes, Logger: logger}
}

type productTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type productTypeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func toProductTypeResponse(pt *model.ProductType) productTypeResponse {
	return productTypeResponse{ID: pt.ID, Name: pt.Name, Description: pt.Description}
}

func (h *ProductTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("ProductType create: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "name must not be empty")
		return
	}

	pt, err := h.ProductTypes.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			writeDetail(w, http.StatusBadRequest, "Product type already exists")
			return
		}
		h.Logger.Errorw("ProductType create: service error", "name", req.Name, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toProductTypeResponse(pt))
}

func (h *ProductTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	pts, err := h.ProductTypes.List(r.Context())
	if err != nil {
		h.Logger.Errorw("ProductType list: service error", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]productTypeResponse, 0, len(pts))
	for i := range pts {
		resp = append(resp, toProductTypeResponse(&pts[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ProductTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}

	pt, err := h.ProductTypes.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Product type not found")
			return
		}
		h.Logger.Errorw("ProductType get: service error", "id", id, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toProductTypeResponse(pt))
}

func (h *ProductTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req productTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("ProductType update: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "name must not be empty")
		return
	}

	pt, err := h.ProductTypes.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "Product type not found")
		case errors.Is(err, service.ErrDuplicateName):
			writeDetail(w, http.StatusBadRequest, "Product type already exists")
		default:
			h.Logger.Errorw("ProductType update: service error", "id", id, "error", err)
			writeDetail(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toProductTypeResponse(pt))
}

func (h *ProductTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.ProductTypes.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Product type not found")
			return
		}
		h.Logger.Errorw("ProductType delete: service error", "id", id, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeDetail(w, http.StatusOK, "Product type deleted")
}
