package feedbackService

import (
	"HotelGolang/internal/api/feedback"
	feedbackRepository "HotelGolang/internal/api/feedback/repository"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"HotelGolang/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type FeedbackService interface {
	CreateFeedback(c context.Context, user entity.UserLoginData, req feedback.CreateFeedbackRequest) (entity.Feedback, error)
	GetFeedback(c context.Context, user entity.UserLoginData) ([]entity.Feedback, error)
}

type feedbackService struct {
	log          *logrus.Logger
	feedbackRepo feedbackRepository.Repository
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	feedbackRepo feedbackRepository.Repository,
	utils utils.IUtils) FeedbackService {
	return &feedbackService{
		log:          log,
		feedbackRepo: feedbackRepo,
		utils:        utils,
	}
}

func (s *feedbackService) CreateFeedback(c context.Context, user entity.UserLoginData, req feedback.CreateFeedbackRequest) (entity.Feedback, error) {
	requestID := contextPkg.GetRequestID(c)

	if user.ID == "" {
		return entity.Feedback{}, feedback.ErrNoCurrentUser
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Feedback{}, err
	}

	fb := entity.Feedback{
		ID:      id,
		UserID:  user.ID,
		Message: req.Message,
	}

	repo, err := s.feedbackRepo.NewClient(false)
	if err != nil {
		return entity.Feedback{}, err
	}

	if err := repo.Feedback.CreateFeedback(c, fb); err != nil {
		return entity.Feedback{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"feedback_id": id,
		"user_id":     user.ID,
	}).Info("Feedback recorded")

	fb.CreatedAt = time.Now()
	return fb, nil
}

func (s *feedbackService) GetFeedback(c context.Context, user entity.UserLoginData) ([]entity.Feedback, error) {
	repo, err := s.feedbackRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	if user.Role == entity.RoleGuest {
		return repo.Feedback.GetByUserID(c, user.ID)
	}

	return repo.Feedback.GetAll(c)
}
