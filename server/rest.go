package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/presshound/pkg/domain"
	"github.com/umputun/presshound/pkg/scraper"
)

// scrapeHandler runs a scrape for the topic and geography query parameters and returns
// enriched journalists as a JSON array
func (s *Server) scrapeHandler(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" {
		renderError(w, r, fmt.Errorf("topic query parameter is required"), http.StatusBadRequest)
		return
	}
	geography := strings.TrimSpace(r.URL.Query().Get("geography"))

	res, err := s.scraper.Scrape(r.Context(), topic, geography)
	if err != nil {
		if errors.Is(err, scraper.ErrEmptyTopic) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		lgr.Printf("[ERROR] scrape for %q failed: %v", topic, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	journalists := res.Journalists
	if journalists == nil {
		journalists = []domain.EnrichedJournalist{}
	}
	w.Header().Set("X-Scrape-ID", res.ID)
	renderJSON(w, r, http.StatusOK, journalists)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":     "ok",
		"version":    s.version,
		"publishers": s.publishers.Len(),
		"time":       time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// publishersHandler lists publishers selected for the optional geography parameter
func (s *Server) publishersHandler(w http.ResponseWriter, r *http.Request) {
	pubs := s.publishers.Select(r.URL.Query().Get("geography"))
	if pubs == nil {
		pubs = []domain.Publisher{}
	}
	renderJSON(w, r, http.StatusOK, pubs)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
