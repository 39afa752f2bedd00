package redis

import (
	"HotelGolang/internal/entity"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("chat session not found")

// Chat sessions live only for the lifetime of the widget; the TTL is the
// teardown analogue on the server side.
const sessionTTL = 24 * time.Hour

type IRedis interface {
	SetSession(ctx context.Context, session entity.ChatSession) error
	GetSession(ctx context.Context, sessionID string) (entity.ChatSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("chat:session:%s", sessionID)
}

func (r *redisClient) SetSession(ctx context.Context, session entity.ChatSession) error {
	payload, err := jsoniter.Marshal(session)
	if err != nil {
		logrus.Error(fmt.Sprintf("Error marshalling chat session %s: %v", session.ID, err))
		return err
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), payload, sessionTTL).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error storing chat session %s: %v", session.ID, err))
		return err
	}

	return nil
}

func (r *redisClient) GetSession(ctx context.Context, sessionID string) (entity.ChatSession, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return entity.ChatSession{}, ErrSessionNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting chat session %s: %v", sessionID, err))
		return entity.ChatSession{}, err
	}

	var session entity.ChatSession
	if err := jsoniter.Unmarshal([]byte(val), &session); err != nil {
		logrus.Error(fmt.Sprintf("Error unmarshalling chat session %s: %v", sessionID, err))
		return entity.ChatSession{}, err
	}

	return session, nil
}

func (r *redisClient) DeleteSession(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting chat session %s: %v", sessionID, err))
		return err
	}
	return nil
}
