package httptransport

import (
	"net/http"

	"growthsphere/internal/platform/config"
	"growthsphere/internal/platform/docstore"
	"growthsphere/internal/transport/http/shared"
)

const maxDiagnosticCollections = 10

// diagnostics reports process and store status without touching business
// data. It distinguishes three states: process up with no store configured,
// store configured but unreachable, and store reachable.
type diagnostics struct {
	cfg  config.Server
	conn *docstore.Conn
}

func newDiagnostics(cfg config.Server, conn *docstore.Conn) *diagnostics {
	return &diagnostics{cfg: cfg, conn: conn}
}

func (d *diagnostics) handleRoot(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "GrowthSphere backend is running",
	})
}

// testResponse mirrors the diagnostic object shape of the /test endpoint.
type testResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (d *diagnostics) handleTest(w http.ResponseWriter, r *http.Request) {
	resp := testResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(d.cfg.DatabaseURL != ""),
		DatabaseName:     "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if d.cfg.DatabaseName != "" {
		resp.DatabaseName = d.cfg.DatabaseName
	}

	if d.conn == nil {
		shared.WriteJSON(w, http.StatusOK, resp)
		return
	}

	resp.DatabaseName = d.conn.Name()
	if err := d.conn.Ping(r.Context()); err != nil {
		resp.Database = "error: " + truncate(err.Error(), 50)
		shared.WriteJSON(w, http.StatusOK, resp)
		return
	}
	resp.ConnectionStatus = "connected"

	names, err := d.conn.CollectionNames(r.Context(), maxDiagnosticCollections)
	if err != nil {
		resp.Database = "connected but error: " + truncate(err.Error(), 50)
		shared.WriteJSON(w, http.StatusOK, resp)
		return
	}
	resp.Database = "connected and working"
	resp.Collections = names
	shared.WriteJSON(w, http.StatusOK, resp)
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
