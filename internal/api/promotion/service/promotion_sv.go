package promotionService

import (
	"HotelGolang/internal/api/promotion"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *promotionService) CreatePromotion(c context.Context, req promotion.CreatePromotionRequest) (entity.Promotion, error) {
	requestID := contextPkg.GetRequestID(c)

	status := entity.PromotionStatusActive
	if req.Status != "" {
		if !entity.IsValidPromotionStatus(req.Status) {
			return entity.Promotion{}, promotion.ErrInvalidPromotionStatus
		}
		status = entity.PromotionStatus(req.Status)
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Promotion{}, err
	}

	promo := entity.Promotion{
		ID:              id,
		Title:           req.Title,
		DiscountPercent: req.DiscountPercent,
		Status:          status,
	}

	repo, err := s.promotionRepo.NewClient(false)
	if err != nil {
		return entity.Promotion{}, err
	}

	if err := repo.Promotions.CreatePromotion(c, promo); err != nil {
		return entity.Promotion{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":       requestID,
		"promotion_id":     id,
		"discount_percent": req.DiscountPercent,
	}).Info("Promotion created")

	return repo.Promotions.GetByID(c, id)
}

func (s *promotionService) GetAll(c context.Context) ([]entity.Promotion, error) {
	repo, err := s.promotionRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Promotions.GetAll(c)
}

func (s *promotionService) GetByID(c context.Context, id string) (entity.Promotion, error) {
	repo, err := s.promotionRepo.NewClient(false)
	if err != nil {
		return entity.Promotion{}, err
	}

	return repo.Promotions.GetByID(c, id)
}

func (s *promotionService) GetActive(c context.Context) (entity.Promotion, error) {
	repo, err := s.promotionRepo.NewClient(false)
	if err != nil {
		return entity.Promotion{}, err
	}

	return repo.Promotions.GetActive(c)
}

func (s *promotionService) UpdatePromotion(c context.Context, id string, req promotion.UpdatePromotionRequest) (entity.Promotion, error) {
	repo, err := s.promotionRepo.NewClient(false)
	if err != nil {
		return entity.Promotion{}, err
	}

	existing, err := repo.Promotions.GetByID(c, id)
	if err != nil {
		return entity.Promotion{}, err
	}

	if req.Title != "" {
		existing.Title = req.Title
	}
	if req.DiscountPercent != nil {
		existing.DiscountPercent = *req.DiscountPercent
	}
	if req.Status != "" {
		if !entity.IsValidPromotionStatus(req.Status) {
			return entity.Promotion{}, promotion.ErrInvalidPromotionStatus
		}
		existing.Status = entity.PromotionStatus(req.Status)
	}

	if err := repo.Promotions.UpdatePromotion(c, existing); err != nil {
		return entity.Promotion{}, err
	}

	return repo.Promotions.GetByID(c, id)
}

func (s *promotionService) DeletePromotion(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.promotionRepo.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Promotions.DeletePromotion(c, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":   requestID,
		"promotion_id": id,
	}).Info("Promotion deleted")

	return nil
}
