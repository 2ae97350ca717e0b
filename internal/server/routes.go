package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dyingroomdev/memshaheb-sub001/internal/handlers"
	"github.com/dyingroomdev/memshaheb-sub001/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	prom := middlewares.NewPrometheusMiddleware()
	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.RateLimit)
	r.Use(prom.Instrument)

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/", ch.HelloWorldHandler)
	r.HandleFunc("/health", ch.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	s.registerAuthRoutes(r)
	s.registerPaintingRoutes(r)
	s.registerBlogRoutes(r)
	s.registerMuseumRoutes(r)
	s.registerPageRoutes(r)
	s.registerSettingsRoutes(r)
	s.registerSubmissionRoutes(r)

	return r
}

func (s *Server) registerAuthRoutes(r *mux.Router) {
	uh := handlers.NewUserHandler(s.userService)
	ah := handlers.NewAuthHandler(s.authService, s.otpService)

	r.HandleFunc("/api/auth/register", uh.Register).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/auth/login", uh.Login).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/auth/forgot-password", ah.ForgotPassword).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/auth/reset-password", ah.ResetPassword).Methods("POST", "OPTIONS")
	r.Handle("/api/me", middlewares.AuthMiddleware(http.HandlerFunc(uh.GetMyProfile))).Methods("GET", "OPTIONS")
	r.Handle("/api/me", middlewares.AuthMiddleware(http.HandlerFunc(uh.UpdateMyProfile))).Methods("PATCH", "PUT", "OPTIONS")
	r.Handle("/api/me", middlewares.AuthMiddleware(http.HandlerFunc(uh.DeleteMyProfile))).Methods("DELETE", "OPTIONS")
	r.Handle("/api/users/{id}/role", middlewares.AuthMiddleware(middlewares.AdminMiddleware(http.HandlerFunc(uh.UpdateUserRole)))).Methods("PUT", "OPTIONS")

	r.HandleFunc("/api/auth/success", ah.AuthSuccess).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/auth/error", ah.AuthError).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/auth/{provider}", ah.ProviderAuth).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/auth/{provider}/callback", ah.ProviderCallback).Methods("GET", "OPTIONS")
}

func (s *Server) registerPaintingRoutes(r *mux.Router) {
	ph := handlers.NewPaintingHandler(s.paintingService)

	r.HandleFunc("/api/paintings", ph.ListPaintings).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/paintings/facets", ph.GetFacets).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/paintings/{slug}", ph.GetPaintingBySlug).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/paintings/{slug}/related", ph.GetRelated).Methods("GET", "OPTIONS")

	r.Handle("/api/admin/paintings", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(ph.ListAllPaintings)))).Methods("GET", "OPTIONS")
	r.Handle("/api/admin/paintings", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(ph.CreatePainting)))).Methods("POST", "OPTIONS")
	r.Handle("/api/admin/paintings/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(ph.UpdatePainting)))).Methods("PUT", "PATCH", "OPTIONS")
	r.Handle("/api/admin/paintings/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(ph.DeletePainting)))).Methods("DELETE", "OPTIONS")
}

func (s *Server) registerBlogRoutes(r *mux.Router) {
	bh := handlers.NewBlogHandler(s.blogService)

	r.HandleFunc("/api/blogs", bh.ListPosts).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/blogs/categories", bh.GetCategories).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/blogs/{slug}", bh.GetPostBySlug).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/blogs/{slug}/related", bh.GetRelatedPosts).Methods("GET", "OPTIONS")

	r.Handle("/api/admin/blogs", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(bh.CreatePost)))).Methods("POST", "OPTIONS")
	r.Handle("/api/admin/blogs/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(bh.UpdatePost)))).Methods("PUT", "PATCH", "OPTIONS")
	r.Handle("/api/admin/blogs/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(bh.DeletePost)))).Methods("DELETE", "OPTIONS")
	r.Handle("/api/admin/blogs/categories", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(bh.AddCategory)))).Methods("POST", "OPTIONS")
	r.Handle("/api/admin/blogs/categories/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(bh.UpdateCategory)))).Methods("PUT", "OPTIONS")
	r.Handle("/api/admin/blogs/categories/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(bh.DeleteCategory)))).Methods("DELETE", "OPTIONS")
}

func (s *Server) registerMuseumRoutes(r *mux.Router) {
	mh := handlers.NewMuseumHandler(s.museumService)

	r.HandleFunc("/api/museum/rooms", mh.GetRooms).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/museum/rooms/{slug}", mh.GetRoomBySlug).Methods("GET", "OPTIONS")

	r.Handle("/api/admin/museum/rooms", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(mh.CreateRoom)))).Methods("POST", "OPTIONS")
	r.Handle("/api/admin/museum/rooms/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(mh.UpdateRoom)))).Methods("PUT", "PATCH", "OPTIONS")
	r.Handle("/api/admin/museum/rooms/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(mh.DeleteRoom)))).Methods("DELETE", "OPTIONS")
	r.Handle("/api/admin/museum/artifacts", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(mh.AddArtifact)))).Methods("POST", "OPTIONS")
	r.Handle("/api/admin/museum/artifacts/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(mh.UpdateArtifact)))).Methods("PUT", "PATCH", "OPTIONS")
	r.Handle("/api/admin/museum/artifacts/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(mh.RemoveArtifact)))).Methods("DELETE", "OPTIONS")
}

func (s *Server) registerPageRoutes(r *mux.Router) {
	ph := handlers.NewPageHandler(s.pageService)

	r.HandleFunc("/api/pages", ph.GetPages).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/biography", ph.GetBiography).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/philosophy", ph.GetPhilosophy).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/pages/{slug}", ph.GetPageBySlug).Methods("GET", "OPTIONS")

	r.Handle("/api/admin/pages", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(ph.CreatePage)))).Methods("POST", "OPTIONS")
	r.Handle("/api/admin/pages/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(ph.UpdatePage)))).Methods("PUT", "PATCH", "OPTIONS")
	r.Handle("/api/admin/pages/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(ph.DeletePage)))).Methods("DELETE", "OPTIONS")
	r.Handle("/api/admin/biography", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(ph.SaveBiography)))).Methods("PUT", "OPTIONS")
	r.Handle("/api/admin/philosophy", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(ph.SavePhilosophy)))).Methods("PUT", "OPTIONS")
}

func (s *Server) registerSettingsRoutes(r *mux.Router) {
	sh := handlers.NewSettingsHandler(s.settingsService)

	r.HandleFunc("/api/settings", sh.GetSettings).Methods("GET", "OPTIONS")
	r.Handle("/api/admin/settings", middlewares.AuthMiddleware(middlewares.AdminMiddleware(http.HandlerFunc(sh.UpdateSettings)))).Methods("PUT", "PATCH", "OPTIONS")
}

func (s *Server) registerSubmissionRoutes(r *mux.Router) {
	sh := handlers.NewSubmissionHandler(s.submissionService)

	r.HandleFunc("/api/submissions", sh.CreateSubmission).Methods("POST", "OPTIONS")

	r.Handle("/api/admin/submissions", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(sh.GetSubmissions)))).Methods("GET", "OPTIONS")
	r.Handle("/api/admin/submissions/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(sh.GetSubmissionByID)))).Methods("GET", "OPTIONS")
	r.Handle("/api/admin/submissions/{id}", middlewares.AuthMiddleware(middlewares.EditorMiddleware(http.HandlerFunc(sh.UpdateSubmissionStatus)))).Methods("PUT", "PATCH", "OPTIONS")
}
