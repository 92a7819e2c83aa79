package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lokascout/lokascout/internal/property"
)

// routeImages handles /api/properties/{id}/images subpaths. rest is the
// part after "images/", already trimmed: "" for the collection,
// "{imageID}" or "{imageID}/primary" for a single image.
func (s *Server) routeImages(w http.ResponseWriter, r *http.Request, propertyID int64, rest string) {
	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiListImages(w, propertyID)
		case http.MethodPost:
			s.apiAddImage(w, r, propertyID)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if idStr, ok := strings.CutSuffix(rest, "/primary"); ok {
		imageID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiError(w, "invalid image ID", http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiSetPrimaryImage(w, propertyID, imageID)
		return
	}

	imageID, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		apiError(w, "invalid image ID", http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodDelete {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.apiDeleteImage(w, imageID)
}

func (s *Server) apiListImages(w http.ResponseWriter, propertyID int64) {
	images, err := s.props.ListImages(propertyID)
	if err != nil {
		apiError(w, fmt.Sprintf("listing images: %v", err), http.StatusInternalServerError)
		return
	}
	if images == nil {
		images = make([]*property.Image, 0)
	}
	apiJSON(w, images, http.StatusOK)
}

func (s *Server) apiAddImage(w http.ResponseWriter, r *http.Request, propertyID int64) {
	var req struct {
		URL         string   `json:"url"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		AltText     string   `json:"alt_text"`
		Tags        []string `json:"tags"`
		IsPrimary   bool     `json:"is_primary"`
		SortOrder   int64    `json:"sort_order"`
	}
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		apiError(w, "url is required", http.StatusBadRequest)
		return
	}

	img, err := s.props.AddImage(propertyID, &property.Image{
		URL:         strings.TrimSpace(req.URL),
		Title:       req.Title,
		Description: req.Description,
		AltText:     req.AltText,
		Tags:        req.Tags,
		IsPrimary:   req.IsPrimary,
		SortOrder:   req.SortOrder,
	})
	if errors.Is(err, property.ErrNotFound) {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("adding image: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, img, http.StatusCreated)
}

func (s *Server) apiSetPrimaryImage(w http.ResponseWriter, propertyID, imageID int64) {
	err := s.props.SetPrimaryImage(propertyID, imageID)
	if errors.Is(err, property.ErrImageNotFound) {
		apiError(w, "image not found", http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("setting primary image: %v", err), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]interface{}{"property_id": propertyID, "primary_image_id": imageID}, http.StatusOK)
}

func (s *Server) apiDeleteImage(w http.ResponseWriter, imageID int64) {
	if err := s.props.DeleteImage(imageID); err != nil {
		apiError(w, fmt.Sprintf("deleting image: %v", err), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]interface{}{"id": imageID, "removed": true}, http.StatusOK)
}
