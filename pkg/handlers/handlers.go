package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"photo-gallery/pkg/services"
)

// FeedHandler handles requests for the gallery feed (JSON)
func FeedHandler(w http.ResponseWriter, _ *http.Request) {
	slog.Info("Generating feed")

	feed := services.GetFeed()

	jsonBytes, err := json.Marshal(feed)
	if err != nil {
		http.Error(w, "failed to encode feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(jsonBytes); err != nil {
		return
	}
}
