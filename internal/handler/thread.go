package handler

import (
	"net/http"

	"github.com/adiwijaya-dev/forum-api/internal/api"
	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/middleware"
	"github.com/adiwijaya-dev/forum-api/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
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
	// Owner always comes from the access token, never from the body.
	payload["owner"] = user.Id

	thread, err := h.thread.Create(payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.AddedThreadResponse{AddedThread: thread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["thread"]

	thread, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.ThreadDetailResponse{Thread: thread})
}
