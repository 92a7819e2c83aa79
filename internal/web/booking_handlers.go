package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lokascout/lokascout/internal/booking"
	"github.com/lokascout/lokascout/internal/property"
	"github.com/lokascout/lokascout/internal/user"
)

// handleAPIBookings routes /api/bookings requests.
func (s *Server) handleAPIBookings(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/bookings")
	path = strings.TrimPrefix(path, "/")

	// /api/bookings handles list and create
	if path == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiListBookings(w, r)
		case http.MethodPost:
			s.apiCreateBooking(w, r)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/bookings/{id}/status
	if idStr, ok := strings.CutSuffix(path, "/status"); ok {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiError(w, "invalid booking ID", http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiUpdateBookingStatus(w, r, id)
		return
	}

	// /api/bookings/{id}
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		apiError(w, "invalid booking ID", http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.apiGetBooking(w, id)
}

func (s *Server) apiListBookings(w http.ResponseWriter, r *http.Request) {
	opts := booking.ListOptions{}
	if v := r.URL.Query().Get("property_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			apiError(w, "invalid property_id", http.StatusBadRequest)
			return
		}
		opts.PropertyID = &id
	}
	if v := r.URL.Query().Get("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			apiError(w, "invalid user_id", http.StatusBadRequest)
			return
		}
		opts.UserID = &id
	}
	if v := r.URL.Query().Get("status"); v != "" {
		st := booking.Status(v)
		if !st.IsValid() {
			apiError(w, "invalid status", http.StatusBadRequest)
			return
		}
		opts.Status = st
	}

	bookings, err := s.bookings.List(opts)
	if err != nil {
		apiError(w, fmt.Sprintf("listing bookings: %v", err), http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = make([]*booking.Booking, 0)
	}

	apiJSON(w, bookings, http.StatusOK)
}

func (s *Server) apiCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PropertyID int64  `json:"property_id"`
		UserID     int64  `json:"user_id"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := s.props.GetByID(req.PropertyID)
	if errors.Is(err, property.ErrNotFound) {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("loading property: %v", err), http.StatusInternalServerError)
		return
	}

	if _, err := s.users.GetByID(req.UserID); errors.Is(err, user.ErrNotFound) {
		apiError(w, "user not found", http.StatusNotFound)
		return
	} else if err != nil {
		apiError(w, fmt.Sprintf("loading user: %v", err), http.StatusInternalServerError)
		return
	}

	b, err := s.bookings.Create(req.PropertyID, req.UserID, req.StartDate, req.EndDate, p.Price)
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	apiJSON(w, b, http.StatusCreated)
}

func (s *Server) apiGetBooking(w http.ResponseWriter, id int64) {
	b, err := s.bookings.GetByID(id)
	if errors.Is(err, booking.ErrNotFound) {
		apiError(w, "booking not found", http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("loading booking: %v", err), http.StatusInternalServerError)
		return
	}
	apiJSON(w, b, http.StatusOK)
}

// apiUpdateBookingStatus moves a booking through its lifecycle. A
// transition to confirmed records the booking against the property's
// counters.
func (s *Server) apiUpdateBookingStatus(w http.ResponseWriter, r *http.Request, id int64) {
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	next := booking.Status(req.Status)
	if !next.IsValid() {
		apiError(w, "invalid status (pending, confirmed, completed, cancelled)", http.StatusBadRequest)
		return
	}

	b, err := s.bookings.UpdateStatus(id, next)
	if errors.Is(err, booking.ErrNotFound) {
		apiError(w, "booking not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, booking.ErrInvalidTransition) {
		apiError(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("updating booking: %v", err), http.StatusInternalServerError)
		return
	}

	if next == booking.StatusConfirmed {
		if err := s.props.RecordBooking(b.PropertyID, b.Total); err != nil {
			slog.Warn("recording booking against property", "property", b.PropertyID, "error", err)
		}
	}

	apiJSON(w, b, http.StatusOK)
}
