package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/adiwijaya-dev/forum-api/internal/config"
	"github.com/adiwijaya-dev/forum-api/internal/handler"
	"github.com/adiwijaya-dev/forum-api/internal/jwt"
	"github.com/adiwijaya-dev/forum-api/internal/logger"
	"github.com/adiwijaya-dev/forum-api/internal/router"
	"github.com/adiwijaya-dev/forum-api/internal/service"
	"github.com/adiwijaya-dev/forum-api/internal/storage/pg"
)

func main() {
	log.SetFlags(log.Lshortfile)

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer storage.Cleanup()

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService, cfg.Public.BcryptCost)
	thread := service.NewThread(storage, storage, storage, storage)
	comment := service.NewComment(storage, storage)
	reply := service.NewReply(storage, storage, storage)
	like := service.NewLike(storage, storage, storage)

	h := handler.New(auth, thread, comment, reply, like, storage, cfg)
	r := router.New(h, jwtService)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = strconv.Itoa(cfg.Public.Port)
	}

	logger.Log.Info("server started", "port", httpPort)
	log.Fatal(http.ListenAndServe(":"+httpPort, r))
}
