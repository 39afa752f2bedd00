package authService

import (
	"HotelGolang/internal/api/auth"
	authRepository "HotelGolang/internal/api/auth/repository"
	"HotelGolang/internal/entity"
	"HotelGolang/pkg/bcrypt"
	"HotelGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	RegisterUser(c context.Context, req auth.CreateUserRequest) error
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	GetByID(c context.Context, id string) (entity.User, error)
}

type authService struct {
	log         *logrus.Logger
	authRepo    authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:         log,
		authRepo:    authRepo,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
