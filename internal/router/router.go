package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adiwijaya-dev/forum-api/internal/handler"
	"github.com/adiwijaya-dev/forum-api/internal/jwt"
	"github.com/adiwijaya-dev/forum-api/internal/middleware"
	"github.com/adiwijaya-dev/forum-api/internal/middleware/metrics"
)

// New creates and configures a mux router with all the routes.
func New(h *handler.Handler, jwtService jwt.JwtService) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(metrics.Middleware)

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.HandleFunc("/readyz", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	needAuth := middleware.NeedAuth(jwtService)

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/users", h.Register).Methods("POST")
	v1.HandleFunc("/auth/login", h.Login).Methods("POST")
	v1.HandleFunc("/auth/logout", h.Logout).Methods("POST")

	v1.HandleFunc("/threads", needAuth(h.CreateThread)).Methods("POST")
	v1.HandleFunc("/threads/{thread}", h.GetThread).Methods("GET")

	v1.HandleFunc("/threads/{thread}/comments", needAuth(h.CreateComment)).Methods("POST")
	v1.HandleFunc("/threads/{thread}/comments/{comment}", needAuth(h.DeleteComment)).Methods("DELETE")

	v1.HandleFunc("/threads/{thread}/comments/{comment}/replies", needAuth(h.CreateReply)).Methods("POST")
	v1.HandleFunc("/threads/{thread}/comments/{comment}/replies/{reply}", needAuth(h.DeleteReply)).Methods("DELETE")

	v1.HandleFunc("/threads/{thread}/comments/{comment}/likes", needAuth(h.ToggleLike)).Methods("PUT")

	return r
}
