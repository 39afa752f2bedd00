package chatbotHandler

import (
	chatbotService "HotelGolang/internal/api/chatbot/service"
	"HotelGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatbotHandler struct {
	log            *logrus.Logger
	chatbotService chatbotService.ChatbotService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatbotService.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{
		log:            log,
		chatbotService: cs,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *ChatbotHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chatbot", h.middleware.NewTokenMiddleware)
	chat.Post("/sessions", h.HandleCreateSession)
	chat.Get("/sessions/:id", h.HandleGetSession)
	chat.Post("/sessions/:id/messages", h.HandleSendMessage)

	chat.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	chat.Get("/ws", websocket.New(h.HandleChatSocket))
}
