package promotionRepository

import (
	"HotelGolang/internal/api/promotion"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PromotionDB struct {
	ID              sql.NullString  `db:"id"`
	Title           sql.NullString  `db:"title"`
	DiscountPercent sql.NullFloat64 `db:"discount_percent"`
	Status          sql.NullString  `db:"status"`
	CreatedAt       sql.NullTime    `db:"created_at"`
	UpdatedAt       sql.NullTime    `db:"updated_at"`
}

func (r *promotionRepository) CreatePromotion(c context.Context, promo entity.Promotion) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               promo.ID,
		"title":            promo.Title,
		"discount_percent": promo.DiscountPercent,
		"status":           string(promo.Status),
		"created_at":       time.Now(),
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryCreatePromotion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePromotion")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating promotion")
		return err
	}

	return nil
}

func (r *promotionRepository) GetByID(c context.Context, id string) (entity.Promotion, error) {
	requestID := contextPkg.GetRequestID(c)
	var row PromotionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPromotionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Promotion{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Promotion{}, promotion.ErrPromotionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Promotion{}, err
	}

	return r.makePromotion(row), nil
}

func (r *promotionRepository) GetAll(c context.Context) ([]entity.Promotion, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []PromotionDB

	query := r.q.Rebind(queryGetAllPromotions)
	if err := r.q.SelectContext(c, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	promotions := make([]entity.Promotion, 0, len(rows))
	for _, row := range rows {
		promotions = append(promotions, r.makePromotion(row))
	}

	return promotions, nil
}

// GetActive returns the most recently created Active promotion.
func (r *promotionRepository) GetActive(c context.Context) (entity.Promotion, error) {
	requestID := contextPkg.GetRequestID(c)
	var row PromotionDB

	query := r.q.Rebind(queryGetActivePromotion)
	if err := r.q.QueryRowxContext(c, query).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Promotion{}, promotion.ErrNoActivePromotion
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActive execution err")
		return entity.Promotion{}, err
	}

	return r.makePromotion(row), nil
}

func (r *promotionRepository) UpdatePromotion(c context.Context, promo entity.Promotion) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               promo.ID,
		"title":            promo.Title,
		"discount_percent": promo.DiscountPercent,
		"status":           string(promo.Status),
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdatePromotion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdatePromotion")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating promotion")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return promotion.ErrPromotionNotFound
	}

	return nil
}

func (r *promotionRepository) DeletePromotion(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePromotion, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeletePromotion")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting promotion")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return promotion.ErrPromotionNotFound
	}

	return nil
}

func (r *promotionRepository) makePromotion(row PromotionDB) entity.Promotion {
	return entity.Promotion{
		ID:              row.ID.String,
		Title:           row.Title.String,
		DiscountPercent: row.DiscountPercent.Float64,
		Status:          entity.PromotionStatus(row.Status.String),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
