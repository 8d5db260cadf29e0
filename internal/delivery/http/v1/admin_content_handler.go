package v1

import (
	"net/http"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/usecase"
	"surpriset-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type AdminContentHandler struct {
	contentUC *usecase.ContentUsecase
}

func NewAdminContentHandler(uc *usecase.ContentUsecase) *AdminContentHandler {
	return &AdminContentHandler{contentUC: uc}
}

// --- Banners ---

func (h *AdminContentHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.contentUC.GetAllBanners(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	if banners == nil {
		banners = []domain.Banner{}
	}
	utils.WriteJSON(w, http.StatusOK, banners)
}

func (h *AdminContentHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var banner domain.Banner
	if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.contentUC.CreateBanner(r.Context(), &banner); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, banner)
}

func (h *AdminContentHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Banner ID required")
		return
	}

	var banner domain.Banner
	if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	banner.ID = id

	if err := h.contentUC.UpdateBanner(r.Context(), &banner); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, banner)
}

func (h *AdminContentHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Banner ID required")
		return
	}

	if err := h.contentUC.DeleteBanner(r.Context(), id); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminContentHandler) ReorderBanners(w http.ResponseWriter, r *http.Request) {
	var updates []domain.BannerReorderItem
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.contentUC.ReorderBanners(r.Context(), updates); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
}

// --- Packaging ---

func (h *AdminContentHandler) ListPackaging(w http.ResponseWriter, r *http.Request) {
	opts, err := h.contentUC.GetAllPackaging(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	if opts == nil {
		opts = []domain.Packaging{}
	}
	utils.WriteJSON(w, http.StatusOK, opts)
}

func (h *AdminContentHandler) CreatePackaging(w http.ResponseWriter, r *http.Request) {
	var p domain.Packaging
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.contentUC.CreatePackaging(r.Context(), &p); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, p)
}

func (h *AdminContentHandler) UpdatePackaging(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Packaging ID required")
		return
	}

	var p domain.Packaging
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	p.ID = id

	if err := h.contentUC.UpdatePackaging(r.Context(), &p); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *AdminContentHandler) DeletePackaging(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Packaging ID required")
		return
	}

	if err := h.contentUC.DeletePackaging(r.Context(), id); err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
