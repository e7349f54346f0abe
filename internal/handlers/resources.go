package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/ukydev/prestige-car-hire/internal/filter"
	"github.com/ukydev/prestige-car-hire/internal/models"
	"github.com/ukydev/prestige-car-hire/internal/validation"
)

// defaultTestimonialLimit caps the testimonial listing when no limit is given.
const defaultTestimonialLimit = 10

// listQuery is a parsed listing request.
type listQuery struct {
	filter filter.Filter
	limit  int64
}

// ListFleet handles GET /api/fleet.
func (h *Handler) ListFleet(w http.ResponseWriter, r *http.Request) {
	query, err := fleetQuery(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.list(w, r, models.KindFleetVehicle.Collection(), query)
}

// CreateFleetVehicle handles POST /api/fleet.
func (h *Handler) CreateFleetVehicle(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, models.KindFleetVehicle.Collection(), &models.FleetVehicle{})
}

// ListTestimonials handles GET /api/testimonials.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r.URL.Query(), defaultTestimonialLimit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.list(w, r, models.KindTestimonial.Collection(), listQuery{limit: limit})
}

// CreateTestimonial handles POST /api/testimonials.
func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, models.KindTestimonial.Collection(), models.NewTestimonial())
}

// ListPosts handles GET /api/posts. Only published posts are listed.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := listQuery{filter: filter.Filter{filter.Equals{Field: "published", Value: true}}}
	h.list(w, r, models.KindPost.Collection(), query)
}

// CreatePost handles POST /api/posts.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, models.KindPost.Collection(), models.NewPost())
}

// SubmitContact handles POST /api/contact.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, models.KindContactMessage.Collection(), &models.ContactMessage{})
}

// fleetQuery builds the fleet filter. Empty parameters and seats=0 are
// ignored.
func fleetQuery(q url.Values) (listQuery, error) {
	var f filter.Filter
	if v := q.Get("q"); v != "" {
		f = append(f, filter.Contains{Fields: []string{"make", "model"}, Value: v})
	}
	for _, field := range []string{"type", "fuel", "transmission"} {
		if v := q.Get(field); v != "" {
			f = append(f, filter.EqualFold{Field: field, Value: v})
		}
	}
	if v := q.Get("seats"); v != "" {
		seats, err := strconv.Atoi(v)
		if err != nil {
			return listQuery{}, queryError("seats", "Value must be an integer")
		}
		if seats != 0 {
			f = append(f, filter.Equals{Field: "seats", Value: seats})
		}
	}
	return listQuery{filter: f}, nil
}

// limitParam reads the limit query parameter. Zero means no limit.
func limitParam(q url.Values, def int64) (int64, error) {
	v := q.Get("limit")
	if v == "" {
		return def, nil
	}
	limit, err := strconv.ParseInt(v, 10, 64)
	if err != nil || limit < 0 {
		return 0, queryError("limit", "Value must be a non-negative integer")
	}
	return limit, nil
}

func queryError(field, message string) error {
	return &validation.Error{Details: []validation.FieldError{{
		Field:   field,
		Message: message,
		Type:    "query",
	}}}
}
