package reportHandler

import (
	reportService "HotelGolang/internal/api/report/service"
	"HotelGolang/internal/entity"
	"HotelGolang/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	log           *logrus.Logger
	middleware    middleware.Middleware
	reportService reportService.ReportService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	rs reportService.ReportService) *ReportHandler {
	return &ReportHandler{
		log:           log,
		middleware:    middleware,
		reportService: rs,
	}
}

func (h *ReportHandler) Start(srv fiber.Router) {
	reports := srv.Group("/reports", h.middleware.NewTokenMiddleware)
	reports.Get("/sales", h.middleware.RequireRoles(entity.RoleAdmin), h.HandleGetSalesReport)
}
