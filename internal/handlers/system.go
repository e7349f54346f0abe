package handlers

import (
	"net/http"

	"github.com/ukydev/prestige-car-hire/internal/db"
	"github.com/ukydev/prestige-car-hire/internal/models"
)

const (
	serviceName = "Prestige Car Hire Management LTD"

	// maxHealthErrorLen bounds the error text echoed by the health check.
	maxHealthErrorLen = 80
)

type rootResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type healthResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type schemaResponse struct {
	Models []string `json:"models"`
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Name: serviceName, Status: "ok"})
}

// TestDatabase handles GET /test. It always answers 200; problems are
// reported in the body.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	health := h.store.HealthCheck(r.Context())
	if health.Error != "" {
		h.log.WithField("error", health.Error).Warn("Database health check failed")
	}
	writeJSON(w, http.StatusOK, describeHealth(health, h.databaseURLSet))
}

// Schema handles GET /schema.
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schemaResponse{Models: models.KindNames()})
}

func describeHealth(health db.Health, databaseURLSet bool) healthResponse {
	resp := healthResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if !health.Connected {
		return resp
	}

	resp.Database = "✅ Available"
	if databaseURLSet {
		resp.DatabaseURL = "✅ Set"
	}
	if health.DatabaseName != "" {
		resp.DatabaseName = health.DatabaseName
	}
	resp.ConnectionStatus = "Connected"

	if !health.Reachable {
		resp.Database = "⚠️ Connected but Error: " + truncate(health.Error, maxHealthErrorLen)
		return resp
	}
	resp.Database = "✅ Connected & Working"
	if health.Collections != nil {
		resp.Collections = health.Collections
	}
	return resp
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
