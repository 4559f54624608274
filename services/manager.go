package services

import (
	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	EmailService  *EmailService
	SheetsService *SheetsService
	OrderService  *OrderService
	HealthService *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config) *ServiceManager {
	emailService := NewEmailService(logger, cfg)
	sheetsService := NewSheetsService(logger, cfg)
	orderService := NewOrderService(logger, sheetsService)
	healthService := NewHealthService(logger)

	return &ServiceManager{
		EmailService:  emailService,
		SheetsService: sheetsService,
		OrderService:  orderService,
		HealthService: healthService,
	}
}
