package api

import (
	"fmt"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rohits-web03/travelstory/docs"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/travelstory/internal/api/handlers"
	"github.com/rohits-web03/travelstory/internal/api/middleware"
	"github.com/rohits-web03/travelstory/internal/config"
)

type RouterDeps struct {
	Handler *handlers.Handler
	Tokens  middleware.TokenVerifier
	Metrics *middleware.Metrics
	Limiter *middleware.RateLimiter
	Config  config.Config
	Log     logrus.FieldLogger
}

func SetupRouter(d RouterDeps) http.Handler {
	mainMux := http.NewServeMux()
	h := d.Handler
	protect := middleware.Auth(d.Tokens)
	limit := d.Limiter.Handler

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	mainMux.Handle("GET /metrics", d.Metrics.Handler())
	mainMux.HandleFunc("GET /docs/", httpSwagger.WrapHandler)

	mainMux.Handle("POST /create-account", limit(http.HandlerFunc(h.RegisterUser)))
	mainMux.Handle("POST /login", limit(http.HandlerFunc(h.LoginUser)))
	if h.GoogleEnabled() {
		mainMux.Handle("GET /auth/google/login", limit(http.HandlerFunc(h.HandleGoogleLogin)))
		mainMux.Handle("GET /auth/google/callback", limit(http.HandlerFunc(h.HandleGoogleCallback)))
	}

	mainMux.Handle("GET /uploads/", http.StripPrefix("/uploads/", staticFiles(d.Config.UploadDir)))
	mainMux.Handle("GET /assets/", http.StripPrefix("/assets/", staticFiles(d.Config.AssetsDir)))

	// ---------- PROTECTED ROUTES ----------
	upload := http.Handler(http.HandlerFunc(h.UploadImage))
	if d.Config.UploadRequiresAuth {
		upload = protect(upload)
	}
	mainMux.Handle("POST /image-upload", upload)

	protected := map[string]http.HandlerFunc{
		"GET /get-user":                 h.GetUser,
		"DELETE /delete-image":          h.DeleteImage,
		"GET /get-all-stories":          h.GetAllStories,
		"POST /add-story":               h.AddStory,
		"POST /edit-story/{id}":         h.EditStory,
		"DELETE /delete-story/{id}":     h.DeleteStory,
		"PUT /update-is-favourite/{id}": h.UpdateIsFavourite,
		"GET /search":                   h.SearchStories,
		"GET /travel-stories/filter":    h.FilterStories,
	}
	for pattern, fn := range protected {
		mainMux.Handle(pattern, protect(fn))
	}

	d.Log.Info("Router initialized")

	// Outermost first: request id, real ip (behind a trusted proxy only),
	// logger, recoverer, cors, metrics.
	handler := d.Metrics.Instrument(mainMux)
	handler = cors.New(d.Config.CorsConfig).Handler(handler)
	handler = chimw.Recoverer(handler)
	handler = middleware.Logger(d.Log)(handler)
	if d.Config.TrustProxyHeaders {
		handler = chimw.RealIP(handler)
	}
	handler = chimw.RequestID(handler)
	return handler
}

// staticFiles serves dir without directory listings. Browsers must take the
// served content type as is.
func staticFiles(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		fs.ServeHTTP(w, r)
	})
}
