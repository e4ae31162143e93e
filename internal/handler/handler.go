package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adiwijaya-dev/forum-api/internal/config"
	"github.com/adiwijaya-dev/forum-api/internal/logger"
	"github.com/adiwijaya-dev/forum-api/internal/service"
)

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	like    service.LikeService
	health  Pinger
	cfg     *config.Config
}

func New(auth service.AuthService, thread service.ThreadService, comment service.CommentService, reply service.ReplyService, like service.LikeService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{auth, thread, comment, reply, like, health, cfg}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}
