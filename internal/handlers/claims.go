package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/ukydev/prestige-car-hire/internal/models"
	"github.com/ukydev/prestige-car-hire/internal/validation"
)

// maxClaimMemory is how much of a claim form is held in memory before
// parts spill to temporary files.
const maxClaimMemory = 32 << 20

var claimFields = []string{
	"full_name",
	"email",
	"phone",
	"incident_date",
	"incident_location",
	"description",
	"policy_number",
	"vehicle_reg",
}

type claimResponse struct {
	ID    string   `json:"id"`
	Files []string `json:"files"`
}

// SubmitClaim handles POST /api/claim. The form is validated before any
// attachment touches disk, and attachments are removed again if the claim
// cannot be stored.
func (h *Handler) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	values, attachments, err := claimForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	input := make(map[string]any, len(claimFields))
	for _, name := range claimFields {
		if v, ok := values[name]; ok && len(v) > 0 {
			input[name] = v[0]
		}
	}

	var claim models.Claim
	if err := validation.Bind(input, &claim); err != nil {
		h.fail(w, r, err)
		return
	}

	paths, err := h.saveAttachments(attachments)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	claim.Files = paths

	id, err := h.store.Insert(r.Context(), models.KindClaim.Collection(), &claim)
	if err != nil {
		h.discard(paths)
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, claimResponse{ID: id, Files: paths})
}

// claimForm parses a multipart claim. URL-encoded bodies are accepted too
// and simply carry no attachments.
func claimForm(r *http.Request) (url.Values, []*multipart.FileHeader, error) {
	err := r.ParseMultipartForm(maxClaimMemory)
	switch {
	case err == nil:
		return r.MultipartForm.Value, r.MultipartForm.File["files"], nil
	case errors.Is(err, http.ErrNotMultipart):
		return r.PostForm, nil, nil
	default:
		return nil, nil, err
	}
}

// saveAttachments writes every attachment, all or nothing.
func (h *Handler) saveAttachments(files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := h.saveAttachment(fh)
		if err != nil {
			h.discard(paths)
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (h *Handler) saveAttachment(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening attachment %q: %w", fh.Filename, err)
	}
	defer f.Close()
	return h.uploads.Save(fh.Filename, f)
}

func (h *Handler) discard(paths []string) {
	if err := h.uploads.Remove(paths...); err != nil {
		h.log.WithError(err).Warn("Failed to remove claim attachments")
	}
}
