package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/aldercommerce/quotebridge-backend/pkg/config"
)

// CORS returns middleware that applies the bridge's allowed origin policy.
// Preflight requests pass through so the OPTIONS route can answer 204 with
// no body.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:     []string{cfg.Origin()},
		AllowedMethods:     []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:             86400,
		OptionsPassthrough: true,
	}).Handler
}
