package feedbackRepository

import (
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type FeedbackDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Message   sql.NullString `db:"message"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (r *feedbackRepository) CreateFeedback(c context.Context, fb entity.Feedback) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         fb.ID,
		"user_id":    fb.UserID,
		"message":    fb.Message,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateFeedback, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateFeedback")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating feedback")
		return err
	}

	return nil
}

func (r *feedbackRepository) GetAll(c context.Context) ([]entity.Feedback, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []FeedbackDB

	query := r.q.Rebind(queryGetAllFeedback)
	if err := r.q.SelectContext(c, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	feedbacks := make([]entity.Feedback, 0, len(rows))
	for _, row := range rows {
		feedbacks = append(feedbacks, r.makeFeedback(row))
	}

	return feedbacks, nil
}

func (r *feedbackRepository) GetByUserID(c context.Context, userID string) ([]entity.Feedback, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []FeedbackDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetFeedbackByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID execution err")
		return nil, err
	}

	feedbacks := make([]entity.Feedback, 0, len(rows))
	for _, row := range rows {
		feedbacks = append(feedbacks, r.makeFeedback(row))
	}

	return feedbacks, nil
}

func (r *feedbackRepository) makeFeedback(row FeedbackDB) entity.Feedback {
	return entity.Feedback{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Message:   row.Message.String,
		CreatedAt: row.CreatedAt.Time,
	}
}
