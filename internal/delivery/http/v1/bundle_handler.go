package v1

import (
	"net/http"

	"surpriset-backend/internal/usecase"
	"surpriset-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type BundleHandler struct {
	bundleUC *usecase.BundleUsecase
}

func NewBundleHandler(uc *usecase.BundleUsecase) *BundleHandler {
	return &BundleHandler{bundleUC: uc}
}

func (h *BundleHandler) GetBundle(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.bundleUC.GetBundle(r.Context(), sessionID(r))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, bundle)
}

func (h *BundleHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	bundle, err := h.bundleUC.AddItem(r.Context(), sessionID(r), req.ProductID, req.Quantity)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, bundle)
}

func (h *BundleHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	bundle, err := h.bundleUC.UpdateQuantity(r.Context(), sessionID(r), req.ProductID, req.Quantity)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, bundle)
}

func (h *BundleHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	bundle, err := h.bundleUC.RemoveItem(r.Context(), sessionID(r), productID)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, bundle)
}

func (h *BundleHandler) SetStep(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Step string `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	bundle, err := h.bundleUC.SetStep(r.Context(), sessionID(r), req.Step)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, bundle)
}

func (h *BundleHandler) ClearBundle(w http.ResponseWriter, r *http.Request) {
	if err := h.bundleUC.Clear(r.Context(), sessionID(r)); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
