package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/prestige-car-hire/internal/db"
	"github.com/ukydev/prestige-car-hire/internal/middleware"
	"github.com/ukydev/prestige-car-hire/internal/uploads"
)

// Options tune a Handler.
type Options struct {
	// DatabaseURLSet is reported by the health endpoint.
	DatabaseURLSet bool
	// Logger receives request and failure logs. Defaults to the standard
	// logrus logger.
	Logger log.FieldLogger
}

// Handler serves the car-hire API.
type Handler struct {
	store          db.Store
	uploads        *uploads.Store
	log            log.FieldLogger
	databaseURLSet bool
}

// NewHandler creates a handler backed by store, writing claim attachments
// to files.
func NewHandler(store db.Store, files *uploads.Store, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Handler{
		store:          store,
		uploads:        files,
		log:            logger,
		databaseURLSet: opts.DatabaseURLSet,
	}
}

// Routes returns the complete HTTP handler, middleware included.
func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/test", h.TestDatabase).Methods(http.MethodGet)
	r.HandleFunc("/schema", h.Schema).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/fleet", h.ListFleet).Methods(http.MethodGet)
	api.HandleFunc("/fleet", h.CreateFleetVehicle).Methods(http.MethodPost)
	api.HandleFunc("/testimonials", h.ListTestimonials).Methods(http.MethodGet)
	api.HandleFunc("/testimonials", h.CreateTestimonial).Methods(http.MethodPost)
	api.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/contact", h.SubmitContact).Methods(http.MethodPost)
	api.HandleFunc("/claim", h.SubmitClaim).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return middleware.CORS(middleware.RequestLogger(h.log)(r))
}
