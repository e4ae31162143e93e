package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adiwijaya-dev/forum-api/internal/config"
	"github.com/adiwijaya-dev/forum-api/internal/domain"
	"github.com/adiwijaya-dev/forum-api/internal/jwt"
	"github.com/adiwijaya-dev/forum-api/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

var testJwt = jwt.New("test-secret", time.Hour)

func testHandler() *Handler {
	cfg := config.New(config.Public{JwtTTLSeconds: 3600}, config.Private{})
	return New(&MockAuthService{}, &MockThreadService{}, &MockCommentService{}, &MockReplyService{}, &MockLikeService{}, nil, cfg)
}

// testRouter mirrors the route table served in main, so handler tests go
// through real mux vars and the auth middleware.
func testRouter(h *Handler) *mux.Router {
	needAuth := middleware.NeedAuth(testJwt)

	r := mux.NewRouter()
	r.HandleFunc("/v1/users", h.Register).Methods("POST")
	r.HandleFunc("/v1/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/v1/auth/logout", h.Logout).Methods("POST")

	r.HandleFunc("/v1/threads", needAuth(h.CreateThread)).Methods("POST")
	r.HandleFunc("/v1/threads/{thread}", h.GetThread).Methods("GET")
	r.HandleFunc("/v1/threads/{thread}/comments", needAuth(h.CreateComment)).Methods("POST")
	r.HandleFunc("/v1/threads/{thread}/comments/{comment}", needAuth(h.DeleteComment)).Methods("DELETE")
	r.HandleFunc("/v1/threads/{thread}/comments/{comment}/replies", needAuth(h.CreateReply)).Methods("POST")
	r.HandleFunc("/v1/threads/{thread}/comments/{comment}/replies/{reply}", needAuth(h.DeleteReply)).Methods("DELETE")
	r.HandleFunc("/v1/threads/{thread}/comments/{comment}/likes", needAuth(h.ToggleLike)).Methods("PUT")

	r.HandleFunc("/healthz", h.Health).Methods("GET")
	return r
}

func authedRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	token, err := testJwt.NewToken(domain.User{Id: "user-123", Username: "dicoding"})
	require.NoError(t, err)

	r := httptest.NewRequest(method, target, body)
	r.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	return r
}

func serve(h *Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	testRouter(h).ServeHTTP(w, r)
	return w
}

func TestHealth(t *testing.T) {
	h := testHandler()
	w := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", strings.TrimSpace(w.Body.String()))
}
