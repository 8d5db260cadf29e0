package v1

import (
	"net/http"
	"strconv"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/usecase"
	"surpriset-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type AdminReviewHandler struct {
	reviewUC *usecase.ReviewUsecase
}

func NewAdminReviewHandler(uc *usecase.ReviewUsecase) *AdminReviewHandler {
	return &AdminReviewHandler{reviewUC: uc}
}

func (h *AdminReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit == 0 {
		limit = 20
	}
	offset, _ := strconv.Atoi(query.Get("offset"))

	filter := domain.ReviewFilter{
		ProductID: query.Get("product_id"),
		Status:    query.Get("status"),
		Limit:     limit,
		Offset:    offset,
	}

	reviews, total, err := h.reviewUC.GetReviews(r.Context(), filter)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"total":   total,
	})
}

func (h *AdminReviewHandler) ModerateReview(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Review ID required")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.reviewUC.Moderate(r.Context(), id, req.Status); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}

func (h *AdminReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Review ID required")
		return
	}

	if err := h.reviewUC.Delete(r.Context(), id); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
