package handler

import (
	"net/http"

	"github.com/adiwijaya-dev/forum-api/internal/api"
	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/middleware"
	"github.com/adiwijaya-dev/forum-api/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
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
	vars := mux.Vars(r)
	payload["thread_id"] = vars["thread"]
	payload["comment_id"] = vars["comment"]
	payload["owner"] = user.Id

	reply, err := h.reply.Add(payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.AddedReplyResponse{AddedReply: reply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	payload := domain.Payload{
		"thread_id":  vars["thread"],
		"comment_id": vars["comment"],
		"reply_id":   vars["reply"],
		"owner":      user.Id,
	}

	if err := h.reply.Delete(payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
