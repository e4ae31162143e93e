package handler

import (
	"net/http"

	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/middleware"
	"github.com/adiwijaya-dev/forum-api/internal/utils"
	"github.com/gorilla/mux"
)

// ToggleLike likes the comment for the caller, or unlikes it when the like
// already exists.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	payload := domain.Payload{
		"thread_id":  vars["thread"],
		"comment_id": vars["comment"],
		"owner":      user.Id,
	}

	if err := h.like.Toggle(payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
