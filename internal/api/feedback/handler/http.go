package feedbackHandler

import (
	feedbackService "HotelGolang/internal/api/feedback/service"
	"HotelGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FeedbackHandler struct {
	log             *logrus.Logger
	feedbackService feedbackService.FeedbackService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	fs feedbackService.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		log:             log,
		feedbackService: fs,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *FeedbackHandler) Start(srv fiber.Router) {
	feedback := srv.Group("/feedback", h.middleware.NewTokenMiddleware)
	feedback.Post("/", h.HandleCreateFeedback)
	feedback.Get("/", h.HandleGetFeedback)
}
