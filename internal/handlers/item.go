package handlers

import (
	"Fabrika/internal/model"
	"Fabrika/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ItemHandler — изделия и их PDF-паспорта.
type ItemHandler struct {
	Items  *service.ItemService
	Logger *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер изделий
func NewItemHandler(items *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{Items: items, Logger: logger}
}

type itemRequest struct {
	MaterialID    int64   `json:"material_id"`
	ProductTypeID int64   `json:"product_type_id"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
}

type itemResponse struct {
	ID            int64   `json:"id"`
	MaterialID    int64   `json:"material_id"`
	ProductTypeID int64   `json:"product_type_id"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	PDFPath       *string `json:"pdf_path"`
}

func toItemResponse(it *model.Item) itemResponse {
	return itemResponse{
		ID:            it.ID,
		MaterialID:    it.MaterialID,
		ProductTypeID: it.ProductTypeID,
		Width:         it.Width,
		Height:        it.Height,
		PDFPath:       it.PDFPath,
	}
}

// writeItemError отображает ошибки workflow изделия в HTTP-статусы.
// ErrRender отдаёт 500, но строка изделия к этому моменту уже закоммичена
// в Pending — клиент может повторить генерацию через PUT по тому же id.
func (h *ItemHandler) writeItemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMaterialNotFound):
		writeDetail(w, http.StatusNotFound, "Material not found")
	case errors.Is(err, service.ErrProductTypeNotFound):
		writeDetail(w, http.StatusNotFound, "Product type not found")
	case errors.Is(err, service.ErrItemNotFound):
		writeDetail(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, service.ErrRender):
		writeDetail(w, http.StatusInternalServerError, "Image processing failed")
	default:
		h.Logger.Errorw("Item: service error", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Item create: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}

	it, err := h.Items.Create(r.Context(), req.MaterialID, req.ProductTypeID, req.Width, req.Height)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	its, err := h.Items.List(r.Context())
	if err != nil {
		h.Logger.Errorw("Item list: service error", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]itemResponse, 0, len(its))
	for i := range its {
		resp = append(resp, toItemResponse(&its[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}

	it, err := h.Items.Get(r.Context(), id)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Item update: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}

	it, err := h.Items.Update(r.Context(), id, req.MaterialID, req.ProductTypeID, req.Width, req.Height)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Items.Delete(r.Context(), id); err != nil {
		h.writeItemError(w, err)
		return
	}

	writeDetail(w, http.StatusOK, "Item deleted")
}
