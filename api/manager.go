package api

import (
	"cocooriginal_server/api/health"
	"cocooriginal_server/api/orders"
	"cocooriginal_server/api/uploads"
	"cocooriginal_server/services"
	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	uploadRoutes *uploads.UploadRoutesManager
	orderRoutes  *orders.OrderRoutesManager
	healthRoutes *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, svc *services.ServiceManager) *routerManager {
	return &routerManager{
		uploadRoutes: uploads.NewUploadRoutesManager(logger, cfg, svc.EmailService),
		orderRoutes:  orders.NewOrderRoutesManager(logger, svc.OrderService),
		healthRoutes: health.NewHealthRoutesManager(svc.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.uploadRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
