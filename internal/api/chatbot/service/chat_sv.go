package chatbotService

import (
	"HotelGolang/internal/api/chatbot"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	redisPkg "HotelGolang/pkg/redis"
	"HotelGolang/pkg/utils"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

type ChatbotService interface {
	CreateSession(c context.Context, user entity.UserLoginData) (entity.ChatSession, error)
	GetSession(c context.Context, user entity.UserLoginData, sessionID string) (entity.ChatSession, error)
	SendMessage(c context.Context, user entity.UserLoginData, sessionID string, text string) (*entity.ChatMessage, entity.ChatSession, error)
}

type chatbotService struct {
	log         *logrus.Logger
	redisServer redisPkg.IRedis
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	redisServer redisPkg.IRedis,
	utils utils.IUtils) ChatbotService {
	return &chatbotService{
		log:         log,
		redisServer: redisServer,
		utils:       utils,
	}
}

func (s *chatbotService) CreateSession(c context.Context, user entity.UserLoginData) (entity.ChatSession, error) {
	requestID := contextPkg.GetRequestID(c)

	// Tokens carry the role claim, but it still goes through the closed
	// enum before a workflow table is assigned.
	role, err := entity.ParseRole(string(user.Role))
	if err != nil {
		return entity.ChatSession{}, chatbot.ErrUnknownRole
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.ChatSession{}, err
	}

	session := entity.ChatSession{
		ID:        id,
		UserID:    user.ID,
		Role:      role,
		Messages:  []entity.ChatMessage{WelcomeMessage(role)},
		CreatedAt: time.Now(),
	}

	if err := s.redisServer.SetSession(c, session); err != nil {
		return entity.ChatSession{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": id,
		"role":       role,
	}).Info("Chat session created")

	return session, nil
}

func (s *chatbotService) GetSession(c context.Context, user entity.UserLoginData, sessionID string) (entity.ChatSession, error) {
	session, err := s.redisServer.GetSession(c, sessionID)
	if err != nil {
		if errors.Is(err, redisPkg.ErrSessionNotFound) {
			return entity.ChatSession{}, chatbot.ErrSessionNotFound
		}
		return entity.ChatSession{}, err
	}

	if session.UserID != user.ID {
		return entity.ChatSession{}, chatbot.ErrSessionNotOwned
	}

	return session, nil
}

func (s *chatbotService) SendMessage(c context.Context, user entity.UserLoginData, sessionID string, text string) (*entity.ChatMessage, entity.ChatSession, error) {
	requestID := contextPkg.GetRequestID(c)

	session, err := s.GetSession(c, user, sessionID)
	if err != nil {
		return nil, entity.ChatSession{}, err
	}

	reply := HandleInput(&session, text)
	if reply == nil {
		// Blank input leaves the transcript untouched.
		return nil, session, nil
	}

	if err := s.redisServer.SetSession(c, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to persist chat session")
		return nil, entity.ChatSession{}, err
	}

	return reply, session, nil
}
