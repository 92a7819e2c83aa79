// Package web provides the HTTP server and JSON API handlers for the
// lokascout marketplace.
package web

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lokascout/lokascout/internal/booking"
	"github.com/lokascout/lokascout/internal/logging"
	"github.com/lokascout/lokascout/internal/property"
	"github.com/lokascout/lokascout/internal/user"
)

// Server is the marketplace API server.
type Server struct {
	props     *property.Repository
	bookings  *booking.Repository
	users     *user.Repository
	exportDir string
	mux       *http.ServeMux
}

// NewServer creates an API server backed by the given database.
// Exports are written under exportDir.
func NewServer(db *sql.DB, exportDir string) *Server {
	s := &Server{
		props:     property.NewRepository(db),
		bookings:  booking.NewRepository(db),
		users:     user.NewRepository(db),
		exportDir: exportDir,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/properties", s.handleAPIProperties)
	s.mux.HandleFunc("/api/properties/", s.handleAPIProperties)
	s.mux.HandleFunc("/api/bookings", s.handleAPIBookings)
	s.mux.HandleFunc("/api/bookings/", s.handleAPIBookings)
	s.mux.HandleFunc("/api/scouts/", s.handleAPIScout)
	s.mux.HandleFunc("/api/users/", s.handleAPIUsers)
	s.mux.HandleFunc("/api/export", s.handleAPIExport)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting lokascout API on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// decodeJSON decodes a request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}
