package routes

import (
	"net/http"

	"board/database"
	"board/handlers"
	"board/monitoring"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(db *gorm.DB, log logrus.FieldLogger, pageHandler *handlers.PageHandler, postHandler *handlers.PostHandler, errorHandler *handlers.ErrorHandler) http.Handler {
	router := mux.NewRouter()
	perRequestDB := database.Middleware(db, log)

	// Page routes
	router.Handle("/", perRequestDB(http.HandlerFunc(pageHandler.Home))).Methods(http.MethodGet).Name("home")
	router.Handle("/about", perRequestDB(http.HandlerFunc(pageHandler.About))).Methods(http.MethodGet).Name("about")

	// Post routes
	router.Handle("/create", perRequestDB(http.HandlerFunc(postHandler.Create))).Methods(http.MethodGet, http.MethodPost).Name("create")
	router.Handle("/posts", perRequestDB(http.HandlerFunc(postHandler.List))).Methods(http.MethodGet).Name("posts")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.NotFoundHandler = perRequestDB(http.HandlerFunc(errorHandler.NotFound))

	return monitoring.InstrumentHandler(router, log)
}
