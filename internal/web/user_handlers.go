package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lokascout/lokascout/internal/property"
	"github.com/lokascout/lokascout/internal/user"
)

// handleAPIScout serves /api/scouts/{id}: the scout's profile plus their
// listings run through the same discovery pipeline as the main catalog.
func (s *Server) handleAPIScout(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/scouts/")
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		apiError(w, "invalid scout ID", http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	u, err := s.users.GetByID(id)
	if errors.Is(err, user.ErrNotFound) {
		apiError(w, "scout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("loading scout: %v", err), http.StatusInternalServerError)
		return
	}
	if u.Role != user.RoleScout {
		apiError(w, "scout not found", http.StatusNotFound)
		return
	}

	props, err := s.props.ListByScout(id)
	if err != nil {
		apiError(w, fmt.Sprintf("listing scout properties: %v", err), http.StatusInternalServerError)
		return
	}

	type response struct {
		Scout *user.User `json:"scout"`
		listResponse
	}
	apiJSON(w, response{Scout: u, listResponse: runPipeline(props, r.URL.Query())}, http.StatusOK)
}

// handleAPIUsers routes /api/users/{id}/saved[/{propertyID}] requests.
func (s *Server) handleAPIUsers(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/users/")

	idStr, rest, ok := strings.Cut(path, "/saved")
	if !ok {
		apiError(w, "not found", http.StatusNotFound)
		return
	}
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		apiError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	if _, err := s.users.GetByID(userID); errors.Is(err, user.ErrNotFound) {
		apiError(w, "user not found", http.StatusNotFound)
		return
	} else if err != nil {
		apiError(w, fmt.Sprintf("loading user: %v", err), http.StatusInternalServerError)
		return
	}

	rest = strings.TrimPrefix(rest, "/")

	// /api/users/{id}/saved lists bookmarks
	if rest == "" {
		if r.Method != http.MethodGet {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiListSaved(w, userID)
		return
	}

	// /api/users/{id}/saved/{propertyID} adds or removes a bookmark
	propertyID, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		apiError(w, "invalid property ID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.apiSaveProperty(w, userID, propertyID)
	case http.MethodDelete:
		s.apiUnsaveProperty(w, userID, propertyID)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiListSaved returns the user's bookmarked listings in bookmark order.
func (s *Server) apiListSaved(w http.ResponseWriter, userID int64) {
	ids, err := s.users.SavedPropertyIDs(userID)
	if err != nil {
		apiError(w, fmt.Sprintf("listing saved properties: %v", err), http.StatusInternalServerError)
		return
	}

	saved := make([]*property.Property, 0, len(ids))
	for _, id := range ids {
		p, err := s.props.GetByID(id)
		if errors.Is(err, property.ErrNotFound) {
			continue // listing deleted since it was saved
		}
		if err != nil {
			apiError(w, fmt.Sprintf("loading property %d: %v", id, err), http.StatusInternalServerError)
			return
		}
		saved = append(saved, p)
	}

	apiJSON(w, saved, http.StatusOK)
}

func (s *Server) apiSaveProperty(w http.ResponseWriter, userID, propertyID int64) {
	if _, err := s.props.GetByID(propertyID); errors.Is(err, property.ErrNotFound) {
		apiError(w, "property not found", http.StatusNotFound)
		return
	} else if err != nil {
		apiError(w, fmt.Sprintf("loading property: %v", err), http.StatusInternalServerError)
		return
	}

	created, err := s.users.SaveProperty(userID, propertyID)
	if err != nil {
		apiError(w, fmt.Sprintf("saving property: %v", err), http.StatusInternalServerError)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	apiJSON(w, map[string]interface{}{"user_id": userID, "property_id": propertyID, "saved": true}, code)
}

func (s *Server) apiUnsaveProperty(w http.ResponseWriter, userID, propertyID int64) {
	if err := s.users.UnsaveProperty(userID, propertyID); err != nil {
		apiError(w, fmt.Sprintf("unsaving property: %v", err), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]interface{}{"user_id": userID, "property_id": propertyID, "saved": false}, http.StatusOK)
}
