package reportService

import (
	"HotelGolang/internal/api/promotion"
	promotionRepository "HotelGolang/internal/api/promotion/repository"
	reservationRepository "HotelGolang/internal/api/reservation/repository"
	contextPkg "HotelGolang/pkg/context"
	"HotelGolang/pkg/pdf"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

type ReportService interface {
	GenerateSalesReport(c context.Context) ([]byte, error)
}

type reportService struct {
	log             *logrus.Logger
	reservationRepo reservationRepository.Repository
	promotionRepo   promotionRepository.Repository
	pdfRenderer     pdf.ItfSalesReport
}

func New(
	log *logrus.Logger,
	reservationRepo reservationRepository.Repository,
	promotionRepo promotionRepository.Repository,
	pdfRenderer pdf.ItfSalesReport) ReportService {
	return &reportService{
		log:             log,
		reservationRepo: reservationRepo,
		promotionRepo:   promotionRepo,
		pdfRenderer:     pdfRenderer,
	}
}

func (s *reportService) GenerateSalesReport(c context.Context) ([]byte, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.reservationRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	payments, err := repo.Payments.GetSalesRows(c)
	if err != nil {
		return nil, err
	}

	rows := make([]pdf.SalesRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, pdf.SalesRow{
			Guest:  p.GuestName,
			Amount: p.Amount,
			Status: string(p.Status),
		})
	}

	// A missing active promotion just means no banner.
	var banner *pdf.PromotionBanner
	promoClient, err := s.promotionRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	active, err := promoClient.Promotions.GetActive(c)
	switch {
	case err == nil:
		banner = &pdf.PromotionBanner{
			Title:           active.Title,
			DiscountPercent: active.DiscountPercent,
		}
	case errors.Is(err, promotion.ErrNoActivePromotion):
	default:
		return nil, err
	}

	document, err := s.pdfRenderer.Render(rows, banner)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to render sales report")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"row_count":  len(rows),
	}).Info("Sales report generated")

	return document, nil
}
