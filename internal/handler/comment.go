package handler

import (
	"net/http"

	"github.com/adiwijaya-dev/forum-api/internal/api"
	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/middleware"
	"github.com/adiwijaya-dev/forum-api/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	payload := domain.Payload{}
	if err := utils.Decode(r.Body, &payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	payload["thread_id"] = mux.Vars(r)["thread"]
	payload["owner"] = user.Id

	comment, err := h.comment.Add(payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.AddedCommentResponse{AddedComment: comment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
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

	if err := h.comment.Delete(payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
