package controllers

import (
	"net/http"
	"time"

	"github.com/aldercommerce/quotebridge-backend/api/responses"
)

type healthBody struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health reports liveness. Registered for every method; the payload carries
// the current time so load balancers can spot stale caches.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, healthBody{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
