package roomRepository

import (
	"HotelGolang/internal/api/room"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type RoomDB struct {
	ID          sql.NullString  `db:"id"`
	Name        sql.NullString  `db:"name"`
	Type        sql.NullString  `db:"type"`
	Price       sql.NullFloat64 `db:"price"`
	Status      sql.NullString  `db:"status"`
	ImageURL    sql.NullString  `db:"image_url"`
	Description sql.NullString  `db:"description"`
	CreatedAt   sql.NullTime    `db:"created_at"`
	UpdatedAt   sql.NullTime    `db:"updated_at"`
}

func (r *roomRepository) CreateRoom(c context.Context, rm entity.Room) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          rm.ID,
		"name":        rm.Name,
		"type":        rm.Type,
		"price":       rm.Price,
		"status":      string(rm.Status),
		"image_url":   rm.ImageURL,
		"description": rm.Description,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateRoom, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateRoom")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"room_name":  rm.Name,
			}).Warn("Room name already exists")
			return room.ErrRoomNameTaken
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating room")
		return err
	}

	return nil
}

func (r *roomRepository) GetByID(c context.Context, id string) (entity.Room, error) {
	requestID := contextPkg.GetRequestID(c)
	var row RoomDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetRoomByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Room{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Room{}, room.ErrRoomNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Room{}, err
	}

	return r.makeRoom(row), nil
}

func (r *roomRepository) GetAll(c context.Context) ([]entity.Room, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []RoomDB

	query := r.q.Rebind(queryGetAllRooms)
	if err := r.q.SelectContext(c, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	rooms := make([]entity.Room, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, r.makeRoom(row))
	}

	return rooms, nil
}

func (r *roomRepository) UpdateRoom(c context.Context, rm entity.Room) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          rm.ID,
		"name":        rm.Name,
		"type":        rm.Type,
		"price":       rm.Price,
		"status":      string(rm.Status),
		"image_url":   rm.ImageURL,
		"description": rm.Description,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateRoom, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateRoom")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return room.ErrRoomNameTaken
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating room")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return room.ErrRoomNotFound
	}

	return nil
}

func (r *roomRepository) UpdateStatus(c context.Context, id string, status entity.RoomStatus) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     string(status),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateRoomStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateStatus")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating room status")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return room.ErrRoomNotFound
	}

	return nil
}

func (r *roomRepository) DeleteRoom(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteRoom, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteRoom")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"room_id":    id,
			}).Warn("Room still referenced by bookings")
			return room.ErrRoomInUse
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting room")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return room.ErrRoomNotFound
	}

	return nil
}

func (r *roomRepository) makeRoom(row RoomDB) entity.Room {
	return entity.Room{
		ID:          row.ID.String,
		Name:        row.Name.String,
		Type:        row.Type.String,
		Price:       row.Price.Float64,
		Status:      entity.RoomStatus(row.Status.String),
		ImageURL:    row.ImageURL.String,
		Description: row.Description.String,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
