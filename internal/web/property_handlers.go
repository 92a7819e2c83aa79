package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lokascout/lokascout/internal/catalog"
	"github.com/lokascout/lokascout/internal/property"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// handleAPIProperties routes /api/properties requests.
func (s *Server) handleAPIProperties(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/properties")
	path = strings.TrimPrefix(path, "/")

	// /api/properties handles list and create
	if path == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiListProperties(w, r)
		case http.MethodPost:
			s.apiCreateProperty(w, r)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/properties/{id}/images[/{imageID}[/primary]]
	if idStr, rest, ok := strings.Cut(path, "/images"); ok {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			apiError(w, "invalid property ID", http.StatusBadRequest)
			return
		}
		s.routeImages(w, r, id, strings.TrimPrefix(rest, "/"))
		return
	}

	// /api/properties/{id} handles show, update, and remove
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		apiError(w, "invalid property ID", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		s.apiGetProperty(w, id)
	case http.MethodPatch:
		s.apiUpdateProperty(w, r, id)
	case http.MethodDelete:
		s.apiDeleteProperty(w, id)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// listResponse is the envelope for paginated property lists.
type listResponse struct {
	Properties []*property.Property `json:"properties"`
	Page       int                  `json:"page"`
	PerPage    int                  `json:"per_page"`
	TotalPages int                  `json:"total_pages"`
	Total      int                  `json:"total"`
}

// apiListProperties runs the full discovery pipeline: load the catalog,
// filter, sort, paginate.
func (s *Server) apiListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := s.props.List()
	if err != nil {
		apiError(w, fmt.Sprintf("listing properties: %v", err), http.StatusInternalServerError)
		return
	}

	apiJSON(w, runPipeline(props, r.URL.Query()), http.StatusOK)
}

// runPipeline applies filter, sort, and pagination params to a loaded
// catalog slice.
func runPipeline(props []*property.Property, q url.Values) listResponse {
	spec := parseFilterSpec(q)
	filtered := catalog.Filter(props, spec)

	if key := q.Get("sort"); key != "" {
		order := catalog.Ascending
		if q.Get("order") == "desc" {
			order = catalog.Descending
		}
		catalog.Sort(filtered, catalog.SortKey(key), order)
	}

	page := parseIntDefault(q.Get("page"), 1)
	perPage := parseIntDefault(q.Get("per_page"), defaultPageSize)
	if perPage > maxPageSize {
		perPage = maxPageSize
	}
	result := catalog.Paginate(filtered, perPage, page)

	items := result.Items
	if items == nil {
		items = make([]*property.Property, 0)
	}

	return listResponse{
		Properties: items,
		Page:       result.Page,
		PerPage:    result.PageSize,
		TotalPages: result.TotalPages,
		Total:      result.TotalItems,
	}
}

// parseFilterSpec maps list query parameters onto a FilterSpec.
func parseFilterSpec(q url.Values) catalog.FilterSpec {
	spec := catalog.FilterSpec{
		Search:         q.Get("q"),
		Category:       q.Get("category"),
		Status:         q.Get("status"),
		RatingBucket:   catalog.Bucket(q.Get("rating")),
		BookingsBucket: catalog.Bucket(q.Get("bookings")),
		HighPerforming: q.Get("high_performing") == "true",
		NeedsAttention: q.Get("needs_attention") == "true",
		RecentlyAdded:  q.Get("recent") == "true",
	}

	if v := q.Get("price_min"); v != "" {
		min := property.ParsePrice(v)
		spec.PriceMin = &min
	}
	if v := q.Get("price_max"); v != "" {
		max := property.ParsePrice(v)
		spec.PriceMax = &max
	}
	if v := q.Get("tags"); v != "" {
		for _, tag := range strings.Split(v, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				spec.Tags = append(spec.Tags, tag)
			}
		}
	}

	return spec
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// createPropertyRequest carries the writable listing fields.
type createPropertyRequest struct {
	ScoutID     int64    `json:"scout_id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Status      string   `json:"status"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags"`
	Features    []string `json:"features"`
	Amenities   []string `json:"amenities"`
}

func (s *Server) apiCreateProperty(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := s.props.Insert(&property.Property{
		ScoutID:     req.ScoutID,
		Name:        strings.TrimSpace(req.Name),
		Location:    req.Location,
		Category:    property.Category(req.Category),
		Description: req.Description,
		Price:       req.Price,
		Status:      property.Status(req.Status),
		Rating:      req.Rating,
		Tags:        req.Tags,
		Features:    req.Features,
		Amenities:   req.Amenities,
	})
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	apiJSON(w, p, http.StatusCreated)
}

// apiGetProperty returns a single listing with its images and bumps the
// view counter.
func (s *Server) apiGetProperty(w http.ResponseWriter, id int64) {
	p, err := s.props.GetByID(id)
	if errors.Is(err, property.ErrNotFound) {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}
	if err != nil {
		apiError(w, fmt.Sprintf("loading property: %v", err), http.StatusInternalServerError)
		return
	}

	if err := s.props.IncrementViews(id); err != nil {
		slog.Warn("incrementing views", "property", id, "error", err)
	}

	images, err := s.props.ListImages(id)
	if err != nil {
		apiError(w, fmt.Sprintf("loading images: %v", err), http.StatusInternalServerError)
		return
	}
	if images == nil {
		images = make([]*property.Image, 0)
	}

	type response struct {
		Property *property.Property `json:"property"`
		Images   []*property.Image  `json:"images"`
	}
	apiJSON(w, response{Property: p, Images: images}, http.StatusOK)
}

// updatePropertyRequest carries the optional fields for a partial update.
type updatePropertyRequest struct {
	ScoutID     *int64    `json:"scout_id"`
	Name        *string   `json:"name"`
	Location    *string   `json:"location"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Price       *int64    `json:"price"`
	Status      *string   `json:"status"`
	Rating      *float64  `json:"rating"`
	Tags        *[]string `json:"tags"`
	Features    *[]string `json:"features"`
	Amenities   *[]string `json:"amenities"`
}

func (s *Server) apiUpdateProperty(w http.ResponseWriter, r *http.Request, id int64) {
	var req updatePropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if _, err := s.props.GetByID(id); errors.Is(err, property.ErrNotFound) {
		apiError(w, "property not found", http.StatusNotFound)
		return
	} else if err != nil {
		apiError(w, fmt.Sprintf("loading property: %v", err), http.StatusInternalServerError)
		return
	}

	fields := property.UpdateFields{
		ScoutID:     req.ScoutID,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Price:       req.Price,
		Rating:      req.Rating,
		Tags:        req.Tags,
		Features:    req.Features,
		Amenities:   req.Amenities,
	}
	if req.Category != nil {
		c := property.Category(*req.Category)
		fields.Category = &c
	}
	if req.Status != nil {
		st := property.Status(*req.Status)
		fields.Status = &st
	}

	if err := s.props.Update(id, fields); err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := s.props.GetByID(id)
	if err != nil {
		apiError(w, fmt.Sprintf("loading property: %v", err), http.StatusInternalServerError)
		return
	}
	apiJSON(w, p, http.StatusOK)
}

// apiDeleteProperty removes a listing. Deleting an id that is already
// gone still reports success.
func (s *Server) apiDeleteProperty(w http.ResponseWriter, id int64) {
	if err := s.props.Delete(id); err != nil {
		apiError(w, fmt.Sprintf("deleting property: %v", err), http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]interface{}{"id": id, "removed": true}, http.StatusOK)
}
