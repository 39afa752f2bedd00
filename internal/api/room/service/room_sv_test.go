package roomService

import (
	"HotelGolang/internal/api/room"
	roomRepository "HotelGolang/internal/api/room/repository"
	"HotelGolang/internal/entity"
	"HotelGolang/pkg/utils"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeRoomStore struct {
	rooms map[string]entity.Room
}

func (f *fakeRoomStore) CreateRoom(_ context.Context, rm entity.Room) error {
	f.rooms[rm.ID] = rm
	return nil
}

func (f *fakeRoomStore) GetByID(_ context.Context, id string) (entity.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return entity.Room{}, room.ErrRoomNotFound
	}
	return rm, nil
}

func (f *fakeRoomStore) GetAll(_ context.Context) ([]entity.Room, error) {
	out := make([]entity.Room, 0, len(f.rooms))
	for _, rm := range f.rooms {
		out = append(out, rm)
	}
	return out, nil
}

func (f *fakeRoomStore) UpdateRoom(_ context.Context, rm entity.Room) error {
	if _, ok := f.rooms[rm.ID]; !ok {
		return room.ErrRoomNotFound
	}
	f.rooms[rm.ID] = rm
	return nil
}

func (f *fakeRoomStore) UpdateStatus(_ context.Context, id string, status entity.RoomStatus) error {
	rm, ok := f.rooms[id]
	if !ok {
		return room.ErrRoomNotFound
	}
	rm.Status = status
	f.rooms[id] = rm
	return nil
}

func (f *fakeRoomStore) DeleteRoom(_ context.Context, id string) error {
	if _, ok := f.rooms[id]; !ok {
		return room.ErrRoomNotFound
	}
	delete(f.rooms, id)
	return nil
}

type fakeRoomRepo struct {
	rooms *fakeRoomStore
}

func (f *fakeRoomRepo) NewClient(_ bool) (roomRepository.Client, error) {
	return roomRepository.Client{
		Rooms:    f.rooms,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeS3 struct {
	uploadURL string
	uploadErr error
	uploads   int
	deletes   []string
	deleteErr error
}

func (f *fakeS3) UploadFile(_ *multipart.FileHeader) (string, error) {
	f.uploads++
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.uploadURL, nil
}

func (f *fakeS3) DeleteFile(fileName string) error {
	f.deletes = append(f.deletes, fileName)
	return f.deleteErr
}

func imageHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
}

func TestCreateRoomUploadFailureIsSoft(t *testing.T) {
	store := &fakeRoomStore{rooms: map[string]entity.Room{}}
	s3Client := &fakeS3{uploadErr: errors.New("bucket unreachable")}
	svc := New(testLogger(), &fakeRoomRepo{rooms: store}, s3Client, utils.New())

	created, err := svc.CreateRoom(context.Background(), room.CreateRoomRequest{
		Name:  "Deluxe Suite",
		Type:  "Suite",
		Price: 4500,
	}, imageHeader("suite.png"))
	if err != nil {
		t.Fatalf("CreateRoom must survive an upload failure, got %v", err)
	}

	if created.ImageURL != "" {
		t.Errorf("image_url = %q, want empty on failed upload", created.ImageURL)
	}
	if len(store.rooms) != 1 {
		t.Errorf("room count = %d, want 1", len(store.rooms))
	}
}

func TestCreateRoomStoresUploadedImageURL(t *testing.T) {
	store := &fakeRoomStore{rooms: map[string]entity.Room{}}
	s3Client := &fakeS3{uploadURL: "https://bucket.s3.amazonaws.com/rooms/1-suite.png"}
	svc := New(testLogger(), &fakeRoomRepo{rooms: store}, s3Client, utils.New())

	created, err := svc.CreateRoom(context.Background(), room.CreateRoomRequest{
		Name:  "Deluxe Suite",
		Type:  "Suite",
		Price: 4500,
	}, imageHeader("suite.png"))
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	if created.ImageURL != s3Client.uploadURL {
		t.Errorf("image_url = %q, want %q", created.ImageURL, s3Client.uploadURL)
	}
	if created.Status != entity.RoomStatusAvailable {
		t.Errorf("status = %q, want Available default", created.Status)
	}
}

func TestCreateRoomWithoutImage(t *testing.T) {
	store := &fakeRoomStore{rooms: map[string]entity.Room{}}
	s3Client := &fakeS3{}
	svc := New(testLogger(), &fakeRoomRepo{rooms: store}, s3Client, utils.New())

	created, err := svc.CreateRoom(context.Background(), room.CreateRoomRequest{
		Name:  "Standard Room",
		Type:  "Standard",
		Price: 2000,
	}, nil)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	if s3Client.uploads != 0 {
		t.Errorf("uploads = %d, want 0", s3Client.uploads)
	}
	if created.ImageURL != "" {
		t.Errorf("image_url = %q, want empty", created.ImageURL)
	}
}

func TestCreateRoomRejectsNonImageFile(t *testing.T) {
	store := &fakeRoomStore{rooms: map[string]entity.Room{}}
	s3Client := &fakeS3{uploadURL: "https://bucket.s3.amazonaws.com/rooms/1-x"}
	svc := New(testLogger(), &fakeRoomRepo{rooms: store}, s3Client, utils.New())

	header := &multipart.FileHeader{
		Filename: "malware.exe",
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/octet-stream"}},
	}

	created, err := svc.CreateRoom(context.Background(), room.CreateRoomRequest{
		Name:  "Standard Room",
		Type:  "Standard",
		Price: 2000,
	}, header)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	if s3Client.uploads != 0 {
		t.Errorf("rejected file still uploaded %d times", s3Client.uploads)
	}
	if created.ImageURL != "" {
		t.Errorf("image_url = %q, want empty", created.ImageURL)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	store := &fakeRoomStore{rooms: map[string]entity.Room{}}
	svc := New(testLogger(), &fakeRoomRepo{rooms: store}, &fakeS3{}, utils.New())

	err := svc.UpdateStatus(context.Background(), "some-id", "Exploded")
	if !errors.Is(err, room.ErrInvalidRoomStatus) {
		t.Fatalf("err = %v, want ErrInvalidRoomStatus", err)
	}
}

func TestDeleteRoomRemovesStoredImage(t *testing.T) {
	roomID := "01J0R44MAAAAAAAAAAAAAAAAAA"
	store := &fakeRoomStore{rooms: map[string]entity.Room{
		roomID: {ID: roomID, Name: "Deluxe", ImageURL: "https://bucket.s3.amazonaws.com/rooms/1-deluxe.png"},
	}}
	s3Client := &fakeS3{}
	svc := New(testLogger(), &fakeRoomRepo{rooms: store}, s3Client, utils.New())

	if err := svc.DeleteRoom(context.Background(), roomID); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}

	if len(store.rooms) != 0 {
		t.Errorf("room count = %d, want 0", len(store.rooms))
	}
	if len(s3Client.deletes) != 1 {
		t.Errorf("image deletes = %d, want 1", len(s3Client.deletes))
	}
}
