package main

import (
	"net/http"
	"strings"

	"portfolio/internal/search"
)

type searchResponse struct {
	Result []search.Item `json:"result"`
}

// searchHandler proxies the "ask a question" box to the upstream search
// API. Its response bodies are the contract the page scripts parse, so it
// bypasses the usual envelope.
func (app *application) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query required"})
		return
	}

	items, err := app.search.Search(r.Context(), query)
	if err != nil {
		app.logger.Errorw("search upstream failed", "query", query, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "search failed"})
		return
	}

	if items == nil {
		items = []search.Item{}
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, searchResponse{Result: items})
}
