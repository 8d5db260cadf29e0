package v1

import (
	"errors"
	"net/http"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/usecase"
	"surpriset-backend/pkg/logger"
	"surpriset-backend/pkg/utils"
)

// sessionID pulls the storefront session from the request context. The
// session middleware guarantees one is present on every route it wraps.
func sessionID(r *http.Request) string {
	if id, ok := r.Context().Value(domain.SessionContextKey).(string); ok {
		return id
	}
	return ""
}

func currentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(domain.UserContextKey).(*domain.User)
	return user, ok && user != nil
}

// writeUsecaseError maps usecase and domain errors onto status codes.
// Unrecognized errors are logged and hidden behind a generic 500.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrBannerNotFound),
		errors.Is(err, domain.ErrPackagingNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrEmptyStore),
		errors.Is(err, usecase.ErrProductUnavailable),
		errors.Is(err, usecase.ErrBundleItemForbidden),
		errors.Is(err, usecase.ErrBundleConstraint),
		errors.Is(err, usecase.ErrMinOrderAmount):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrStatusTransition):
		utils.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		utils.WriteError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, usecase.ErrForbidden):
		utils.WriteError(w, http.StatusForbidden, err.Error())
	default:
		logger.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		utils.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
