package uploads

import (
	"context"
	"net/http"

	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Notifier is what the upload endpoint needs from the email layer.
type Notifier interface {
	SendUploadNotification(ctx context.Context, n *structs.UploadNotification) (*structs.UploadReceipt, error)
}

type UploadRoutesManager struct {
	logger   *gecho.Logger
	cfg      *structs.Config
	notifier Notifier
}

func NewUploadRoutesManager(logger *gecho.Logger, cfg *structs.Config, notifier Notifier) *UploadRoutesManager {
	return &UploadRoutesManager{
		logger:   logger,
		cfg:      cfg,
		notifier: notifier,
	}
}

func (urm *UploadRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/send-email", urm.SendUploadEmail)
	r.Options("/send-email", urm.Preflight)
}

// Preflight answers bare OPTIONS probes from the storefront with a 200 and
// no body. The CORS middleware has already attached the response headers.
func (urm *UploadRoutesManager) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
