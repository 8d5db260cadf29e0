package v1

import (
	"net/http"

	"surpriset-backend/internal/usecase"
	"surpriset-backend/pkg/utils"
)

type LikeHandler struct {
	likeUC *usecase.LikeUsecase
}

func NewLikeHandler(uc *usecase.LikeUsecase) *LikeHandler {
	return &LikeHandler{likeUC: uc}
}

func (h *LikeHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if productID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	result, err := h.likeUC.Toggle(r.Context(), productID, sessionID(r))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *LikeHandler) GetMyLikes(w http.ResponseWriter, r *http.Request) {
	ids, err := h.likeUC.GetSessionLikes(r.Context(), sessionID(r))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string][]string{"productIds": ids})
}
