package v1

import (
	"net/http"
	"strconv"
	"strings"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/usecase"
	"surpriset-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalogUC.ListCategories(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cats)
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit == 0 {
		limit = 20
	}
	page, _ := strconv.Atoi(query.Get("page"))
	if page == 0 {
		page = 1
	}

	minPrice, _ := strconv.ParseFloat(query.Get("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(query.Get("max_price"), 64)

	var isFeatured *bool
	if val := query.Get("is_featured"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			isFeatured = &b
		}
	}

	filter := domain.ProductFilter{
		Query:      query.Get("q"),
		Sort:       query.Get("sort"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Statuses:   splitParam(query.Get("status")),
		Types:      splitParam(query.Get("type")),
		Categories: splitParam(query.Get("category")),
		Limit:      limit,
		Offset:     (page - 1) * limit,
		IsFeatured: isFeatured,
	}

	result, err := h.catalogUC.ListProducts(r.Context(), filter)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	product, err := h.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}
