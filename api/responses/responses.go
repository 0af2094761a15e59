package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/aldercommerce/quotebridge-backend/pkg/errors"
	"github.com/aldercommerce/quotebridge-backend/pkg/logger"
)

// ErrorBody is the wire envelope for every failed request.
type ErrorBody struct {
	Error   string   `json:"error"`
	Status  int      `json:"status,omitempty"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// WriteError is the single response-mapping point: it renders the typed
// error's wire envelope and logs the full chain, including anything (such as
// upstream response bodies) that the envelope deliberately omits.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	body := ErrorBody{Error: string(typed.Code())}
	if meta.MessageShown {
		body.Message = meta.PublicMessage
		if m := typed.Message(); m != "" {
			body.Message = m
		}
	}
	if meta.DetailsShown {
		body.Details = typed.Details()
	}
	if typed.Code() == pkgerrors.CodeShopify {
		body.Status = typed.UpstreamStatus()
	}

	if logg != nil {
		fields := map[string]any{
			"error":      typed.Error(),
			"error_code": string(typed.Code()),
		}
		if status := typed.UpstreamStatus(); status != 0 {
			fields["upstream_status"] = status
		}
		if details := typed.Details(); details != nil {
			fields["error_details"] = details
		}
		ctx = logg.WithFields(ctx, fields)
		logg.Error(ctx, "request.error", err)
	}

	WriteJSON(w, meta.HTTPStatus, body)
}
