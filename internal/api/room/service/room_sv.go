package roomService

import (
	"HotelGolang/internal/api/room"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"context"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *roomService) CreateRoom(c context.Context, req room.CreateRoomRequest, image *multipart.FileHeader) (entity.Room, error) {
	requestID := contextPkg.GetRequestID(c)

	status := entity.RoomStatusAvailable
	if req.Status != "" {
		if !entity.IsValidRoomStatus(req.Status) {
			return entity.Room{}, room.ErrInvalidRoomStatus
		}
		status = entity.RoomStatus(req.Status)
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Room{}, err
	}

	// Image upload is a soft failure: the room is still created, just
	// without an image URL.
	imageURL := s.uploadImage(requestID, image)

	newRoom := entity.Room{
		ID:          id,
		Name:        req.Name,
		Type:        req.Type,
		Price:       req.Price,
		Status:      status,
		ImageURL:    imageURL,
		Description: req.Description,
	}

	repo, err := s.roomRepo.NewClient(false)
	if err != nil {
		return entity.Room{}, err
	}

	if err := repo.Rooms.CreateRoom(c, newRoom); err != nil {
		return entity.Room{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"room_id":    id,
		"room_name":  req.Name,
	}).Info("Room created")

	return repo.Rooms.GetByID(c, id)
}

func (s *roomService) GetAll(c context.Context) ([]entity.Room, error) {
	repo, err := s.roomRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Rooms.GetAll(c)
}

func (s *roomService) GetByID(c context.Context, id string) (entity.Room, error) {
	repo, err := s.roomRepo.NewClient(false)
	if err != nil {
		return entity.Room{}, err
	}

	return repo.Rooms.GetByID(c, id)
}

func (s *roomService) UpdateRoom(c context.Context, id string, req room.UpdateRoomRequest, image *multipart.FileHeader) (entity.Room, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.roomRepo.NewClient(false)
	if err != nil {
		return entity.Room{}, err
	}

	existing, err := repo.Rooms.GetByID(c, id)
	if err != nil {
		return entity.Room{}, err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Type != "" {
		existing.Type = req.Type
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Status != "" {
		if !entity.IsValidRoomStatus(req.Status) {
			return entity.Room{}, room.ErrInvalidRoomStatus
		}
		existing.Status = entity.RoomStatus(req.Status)
	}

	if image != nil {
		if newURL := s.uploadImage(requestID, image); newURL != "" {
			if existing.ImageURL != "" {
				if err := s.s3Client.DeleteFile(existing.ImageURL); err != nil {
					s.log.WithFields(logrus.Fields{
						"request_id": requestID,
						"room_id":    id,
						"error":      err.Error(),
					}).Warn("Failed to delete replaced room image")
				}
			}
			existing.ImageURL = newURL
		}
	}

	if err := repo.Rooms.UpdateRoom(c, existing); err != nil {
		return entity.Room{}, err
	}

	return repo.Rooms.GetByID(c, id)
}

func (s *roomService) UpdateStatus(c context.Context, id string, status string) error {
	if !entity.IsValidRoomStatus(status) {
		return room.ErrInvalidRoomStatus
	}

	repo, err := s.roomRepo.NewClient(false)
	if err != nil {
		return err
	}

	return repo.Rooms.UpdateStatus(c, id, entity.RoomStatus(status))
}

func (s *roomService) DeleteRoom(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.roomRepo.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Rooms.GetByID(c, id)
	if err != nil {
		return err
	}

	if err := repo.Rooms.DeleteRoom(c, id); err != nil {
		return err
	}

	if existing.ImageURL != "" {
		if err := s.s3Client.DeleteFile(existing.ImageURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"room_id":    id,
				"error":      err.Error(),
			}).Warn("Failed to delete room image from storage")
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"room_id":    id,
	}).Info("Room deleted")

	return nil
}

// uploadImage never fails the caller. A missing or rejected file, or a
// storage error, yields an empty URL and a log line.
func (s *roomService) uploadImage(requestID string, image *multipart.FileHeader) string {
	if image == nil {
		return ""
	}

	if err := s.utils.ValidateImageFile(image); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"file_name":  image.Filename,
			"error":      err.Error(),
		}).Warn("Rejected room image file")
		return ""
	}

	url, err := s.s3Client.UploadFile(image)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"file_name":  image.Filename,
			"error":      err.Error(),
		}).Error("Failed to upload room image, continuing without one")
		return ""
	}

	return url
}
