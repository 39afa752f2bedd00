package roomHandler

import (
	roomService "HotelGolang/internal/api/room/service"
	"HotelGolang/internal/entity"
	"HotelGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RoomHandler struct {
	log         *logrus.Logger
	roomService roomService.RoomService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs roomService.RoomService) *RoomHandler {
	return &RoomHandler{
		log:         log,
		roomService: rs,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *RoomHandler) Start(srv fiber.Router) {
	rooms := srv.Group("/rooms", h.middleware.NewTokenMiddleware)
	rooms.Get("/", h.HandleGetRooms)
	rooms.Get("/:id", h.HandleGetRoomByID)
	rooms.Post("/", h.middleware.RequireRoles(entity.RoleAdmin), h.HandleCreateRoom)
	rooms.Patch("/:id", h.middleware.RequireRoles(entity.RoleAdmin), h.HandleUpdateRoom)
	rooms.Patch("/:id/status", h.middleware.RequireRoles(entity.RoleAdmin, entity.RoleReceptionist), h.HandleUpdateRoomStatus)
	rooms.Delete("/:id", h.middleware.RequireRoles(entity.RoleAdmin), h.HandleDeleteRoom)
}
