package promotionHandler

import (
	promotionService "HotelGolang/internal/api/promotion/service"
	"HotelGolang/internal/entity"
	"HotelGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PromotionHandler struct {
	log              *logrus.Logger
	promotionService promotionService.PromotionService
	validator        *validator.Validate
	middleware       middleware.Middleware
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps promotionService.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		log:              log,
		promotionService: ps,
		validator:        validate,
		middleware:       middleware,
	}
}

func (h *PromotionHandler) Start(srv fiber.Router) {
	promotions := srv.Group("/promotions", h.middleware.NewTokenMiddleware)
	promotions.Get("/", h.HandleGetPromotions)
	promotions.Get("/active", h.HandleGetActivePromotion)
	promotions.Get("/:id", h.HandleGetPromotionByID)
	promotions.Post("/", h.middleware.RequireRoles(entity.RoleAdmin), h.HandleCreatePromotion)
	promotions.Patch("/:id", h.middleware.RequireRoles(entity.RoleAdmin), h.HandleUpdatePromotion)
	promotions.Delete("/:id", h.middleware.RequireRoles(entity.RoleAdmin), h.HandleDeletePromotion)
}
