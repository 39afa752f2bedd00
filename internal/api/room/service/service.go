package roomService

import (
	"HotelGolang/internal/api/room"
	roomRepository "HotelGolang/internal/api/room/repository"
	"HotelGolang/internal/entity"
	"HotelGolang/pkg/s3"
	"HotelGolang/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type RoomService interface {
	CreateRoom(c context.Context, req room.CreateRoomRequest, image *multipart.FileHeader) (entity.Room, error)
	GetAll(c context.Context) ([]entity.Room, error)
	GetByID(c context.Context, id string) (entity.Room, error)
	UpdateRoom(c context.Context, id string, req room.UpdateRoomRequest, image *multipart.FileHeader) (entity.Room, error)
	UpdateStatus(c context.Context, id string, status string) error
	DeleteRoom(c context.Context, id string) error
}

type roomService struct {
	log      *logrus.Logger
	roomRepo roomRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(
	log *logrus.Logger,
	roomRepo roomRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils) RoomService {
	return &roomService{
		log:      log,
		roomRepo: roomRepo,
		s3Client: s3Client,
		utils:    utils,
	}
}
