package v1

import (
	"net/http"

	"surpriset-backend/internal/usecase"
	"surpriset-backend/pkg/utils"
)

type AdminStatsHandler struct {
	statsUC *usecase.StatsUsecase
}

func NewAdminStatsHandler(uc *usecase.StatsUsecase) *AdminStatsHandler {
	return &AdminStatsHandler{statsUC: uc}
}

func (h *AdminStatsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUC.GetDashboardStats(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}
