package v1

import (
	"net/http"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/usecase"
	"surpriset-backend/pkg/utils"
)

type ContentHandler struct {
	contentUC *usecase.ContentUsecase
}

func NewContentHandler(uc *usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUC: uc}
}

func (h *ContentHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.contentUC.GetActiveBanners(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	if banners == nil {
		banners = []domain.Banner{}
	}
	utils.WriteJSON(w, http.StatusOK, banners)
}

func (h *ContentHandler) GetPackaging(w http.ResponseWriter, r *http.Request) {
	opts, err := h.contentUC.GetActivePackaging(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	if opts == nil {
		opts = []domain.Packaging{}
	}
	utils.WriteJSON(w, http.StatusOK, opts)
}
