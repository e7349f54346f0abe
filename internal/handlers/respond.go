package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/prestige-car-hire/internal/db"
	"github.com/ukydev/prestige-car-hire/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
)

var errInvalidJSON = errors.New("request body must be a JSON object")

type errorResponse struct {
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details,omitempty"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// fail answers a request that could not be completed. Validation problems
// are the client's; anything else is a storage failure.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Message: "Invalid request data",
			Details: verr.Details,
		})
		return
	}

	h.log.WithError(err).WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error("Request failed")

	if errors.Is(err, db.ErrNotConnected) {
		writeError(w, http.StatusInternalServerError, "Database not available")
		return
	}
	writeError(w, http.StatusInternalServerError, "Storage error")
}

// readObject decodes the request body as a JSON object.
func readObject(r *http.Request) (map[string]any, error) {
	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, errInvalidJSON
	}
	if input == nil {
		return nil, errInvalidJSON
	}
	return input, nil
}

// shapeRecords replaces each document's _id with a string id.
func shapeRecords(docs []bson.M) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		rec := make(map[string]any, len(doc))
		for k, v := range doc {
			if k == db.IDField {
				continue
			}
			rec[k] = v
		}
		rec["id"] = db.IDString(doc[db.IDField])
		out = append(out, rec)
	}
	return out
}

// create binds a JSON body onto record and stores it in collection.
func (h *Handler) create(w http.ResponseWriter, r *http.Request, collection string, record any) {
	input, err := readObject(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validation.Bind(input, record); err != nil {
		h.fail(w, r, err)
		return
	}
	id, err := h.store.Insert(r.Context(), collection, record)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{ID: id})
}

// list queries collection and writes the shaped documents.
func (h *Handler) list(w http.ResponseWriter, r *http.Request, collection string, f listQuery) {
	docs, err := h.store.Query(r.Context(), collection, f.filter, f.limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shapeRecords(docs))
}
