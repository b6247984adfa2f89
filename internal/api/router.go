package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/rohits-web03/plotwise/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/plotwise/internal/api/handlers"
	"github.com/rohits-web03/plotwise/internal/api/middleware"
	"github.com/rohits-web03/plotwise/internal/config"
	"github.com/rohits-web03/plotwise/internal/models"
	"github.com/rohits-web03/plotwise/internal/repositories"
	"github.com/rs/cors"
)

func SetupRouter(store *repositories.Store) http.Handler {
	h := handlers.New(store)

	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mainMux.HandleFunc("/register", h.Register)
	mainMux.HandleFunc("/login", h.Login)
	mainMux.HandleFunc("/logout", h.Logout)
	mainMux.HandleFunc("/auth/google/login", h.GoogleLogin)
	mainMux.HandleFunc("/auth/google/callback", h.GoogleCallback)

	// ---------- PROTECTED ROUTES ----------
	mainMux.Handle("/predict", middleware.AuthMiddleware(http.HandlerFunc(h.Predict)))
	mainMux.Handle("/history", middleware.AuthMiddleware(http.HandlerFunc(h.History)))

	// ---------- ADMIN ROUTES ----------
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("/stats", h.AdminStats)
	adminMux.HandleFunc("/users", h.AdminUsers)
	adminMux.HandleFunc("/history", h.AdminHistory)
	adminMux.HandleFunc("/price-comparison", h.PriceComparison)
	adminMux.HandleFunc("/edit-user", h.EditUser)
	adminMux.HandleFunc("/delete-user", h.DeleteUser)

	mainMux.Handle("/admin/",
		http.StripPrefix(
			"/admin",
			middleware.AuthMiddleware(
				middleware.RequireRole(models.RoleAdmin)(adminMux),
			),
		),
	)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
