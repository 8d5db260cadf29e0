package v1

import (
	"net/http"

	"surpriset-backend/pkg/utils"
)

// SessionHandler lets a fresh client obtain its session ID explicitly
// instead of waiting for the first cart request to mint one.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

func (h *SessionHandler) IssueSession(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"sessionId": sessionID(r)})
}
