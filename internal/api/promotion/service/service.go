package promotionService

import (
	"HotelGolang/internal/api/promotion"
	promotionRepository "HotelGolang/internal/api/promotion/repository"
	"HotelGolang/internal/entity"
	"HotelGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type PromotionService interface {
	CreatePromotion(c context.Context, req promotion.CreatePromotionRequest) (entity.Promotion, error)
	GetAll(c context.Context) ([]entity.Promotion, error)
	GetByID(c context.Context, id string) (entity.Promotion, error)
	GetActive(c context.Context) (entity.Promotion, error)
	UpdatePromotion(c context.Context, id string, req promotion.UpdatePromotionRequest) (entity.Promotion, error)
	DeletePromotion(c context.Context, id string) error
}

type promotionService struct {
	log           *logrus.Logger
	promotionRepo promotionRepository.Repository
	utils         utils.IUtils
}

func New(
	log *logrus.Logger,
	promotionRepo promotionRepository.Repository,
	utils utils.IUtils) PromotionService {
	return &promotionService{
		log:           log,
		promotionRepo: promotionRepo,
		utils:         utils,
	}
}
