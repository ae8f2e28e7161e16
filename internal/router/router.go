package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"stockboard/internal/config"
	handlers "stockboard/internal/handler"
	"stockboard/internal/middleware"
	"stockboard/internal/service"
)

// NewAPIRouter builds the community API with its middleware chain applied.
func NewAPIRouter(h *handlers.Handlers, cfg *config.Config, authService service.AuthService) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	var createPost http.Handler = http.HandlerFunc(h.CreatePost)
	if cfg.PostsRequireAuth {
		createPost = middleware.Chain(createPost, middleware.AuthMiddleware(authService))
	}
	r.Handle("/posts", createPost).Methods(http.MethodPost)
	r.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts/{stockCode}/{postId}", h.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/posts/{stockCode}/{postId}/images", h.AddImage).Methods(http.MethodPost)
	r.HandleFunc("/posts/{stockCode}/{postId}/images", h.ListImages).Methods(http.MethodGet)

	r.HandleFunc("/chatbot/ask", h.ChatbotAsk).Methods(http.MethodPost)

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	return withDefaultChain(r)
}

// NewLandingRouter serves the static landing page only.
func NewLandingRouter() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	return middleware.Chain(r, middleware.RecoverMiddleware, middleware.LoggingMiddleware)
}

// CORS wraps the router, so preflight requests answer 200 before route
// matching could turn them into a 405.
func withDefaultChain(r *mux.Router) http.Handler {
	return middleware.Chain(
		r,
		middleware.CORSMiddleware,
		middleware.RecoverMiddleware,
		middleware.LoggingMiddleware,
	)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, "resource not found", http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
}
