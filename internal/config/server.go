package config

import (
	"HotelGolang/database/postgres"
	authHandler "HotelGolang/internal/api/auth/handler"
	authRepository "HotelGolang/internal/api/auth/repository"
	authService "HotelGolang/internal/api/auth/service"
	chatbotHandler "HotelGolang/internal/api/chatbot/handler"
	chatbotService "HotelGolang/internal/api/chatbot/service"
	feedbackHandler "HotelGolang/internal/api/feedback/handler"
	feedbackRepository "HotelGolang/internal/api/feedback/repository"
	feedbackService "HotelGolang/internal/api/feedback/service"
	promotionHandler "HotelGolang/internal/api/promotion/handler"
	promotionRepository "HotelGolang/internal/api/promotion/repository"
	promotionService "HotelGolang/internal/api/promotion/service"
	reportHandler "HotelGolang/internal/api/report/handler"
	reportService "HotelGolang/internal/api/report/service"
	reservationHandler "HotelGolang/internal/api/reservation/handler"
	reservationRepository "HotelGolang/internal/api/reservation/repository"
	reservationService "HotelGolang/internal/api/reservation/service"
	roomHandler "HotelGolang/internal/api/room/handler"
	roomRepository "HotelGolang/internal/api/room/repository"
	roomService "HotelGolang/internal/api/room/service"
	"HotelGolang/internal/middleware"
	"HotelGolang/pkg/bcrypt"
	"HotelGolang/pkg/pdf"
	"HotelGolang/pkg/redis"
	"HotelGolang/pkg/s3"
	"HotelGolang/pkg/smtp"
	"HotelGolang/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
	s3Client    s3.ItfS3
	pdfRenderer pdf.ItfSalesReport
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithPDFRenderer() ServerOption {
	return func(s *Server) error {
		s.pdfRenderer = pdf.NewSalesReport()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Room Domain
	roomRepo := roomRepository.New(s.db, s.log)
	roomServices := roomService.New(s.log, roomRepo, s.s3Client, s.utils)
	roomHandlers := roomHandler.New(s.log, s.validator, s.middleware, roomServices)

	// Reservation Domain (bookings + payments)
	reservationRepo := reservationRepository.New(s.db, s.log)
	reservationServices := reservationService.New(s.log, reservationRepo, roomRepo, authRepo, s.smtpMailer, s.utils)
	reservationHandlers := reservationHandler.New(s.log, s.validator, s.middleware, reservationServices)

	// Promotion Domain
	promotionRepo := promotionRepository.New(s.db, s.log)
	promotionServices := promotionService.New(s.log, promotionRepo, s.utils)
	promotionHandlers := promotionHandler.New(s.log, s.validator, s.middleware, promotionServices)

	// Feedback Domain
	feedbackRepo := feedbackRepository.New(s.db, s.log)
	feedbackServices := feedbackService.New(s.log, feedbackRepo, s.utils)
	feedbackHandlers := feedbackHandler.New(s.log, s.validator, s.middleware, feedbackServices)

	// Sales Report Domain
	reportServices := reportService.New(s.log, reservationRepo, promotionRepo, s.pdfRenderer)
	reportHandlers := reportHandler.New(s.log, s.middleware, reportServices)

	// Chatbot Domain
	chatbotServices := chatbotService.New(s.log, s.redisServer, s.utils)
	chatbotHandlers := chatbotHandler.New(s.log, s.validator, s.middleware, chatbotServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers, roomHandlers, reservationHandlers,
		promotionHandlers, feedbackHandlers, reportHandlers, chatbotHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
