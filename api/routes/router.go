package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aldercommerce/quotebridge-backend/api/controllers"
	"github.com/aldercommerce/quotebridge-backend/api/middleware"
	"github.com/aldercommerce/quotebridge-backend/api/responses"
	"github.com/aldercommerce/quotebridge-backend/pkg/config"
	pkgerrors "github.com/aldercommerce/quotebridge-backend/pkg/errors"
	"github.com/aldercommerce/quotebridge-backend/pkg/logger"
	"github.com/aldercommerce/quotebridge-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	quoteService controllers.QuoteService,
	requestMetrics *metrics.RequestMetrics,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(requestMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.MethodNotAllowed(methodNotAllowed(logg))

	r.HandleFunc("/health", controllers.Health())
	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/quote", controllers.CreateQuote(cfg, quoteService, logg))
		r.Options("/quote", controllers.QuotePreflight())
	})

	return r
}

func methodNotAllowed(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeMethodNotAllowed, ""))
	}
}
