package usecase

import (
	"context"
	"errors"

	"creator-hub/pkg/apperror"
	"creator-hub/pkg/logger"
	"creator-hub/services/catalog/internal/entity"
	"creator-hub/services/catalog/internal/repo/persistent"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const MsgUserNotFound = "User not found"

type UserUseCase interface {
	CreateUser(ctx context.Context, in *entity.NewUser) (*entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userUseCase struct {
	userRepo persistent.UserRepository
	validate *validator.Validate
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		validate: newValidator(),
		logger:   logger,
	}
}

// CreateUser stores the user with a bcrypt hash of the password. The
// plaintext never reaches the repository.
func (uc *userUseCase) CreateUser(ctx context.Context, in *entity.NewUser) (*entity.User, error) {
	if in == nil {
		return nil, apperror.Validation("invalid user", nil)
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, validationError("invalid user", err)
	}

	_, err := uc.userRepo.GetByUsername(in.Username)
	if err == nil {
		return nil, apperror.Conflict("Username already taken")
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		return nil, apperror.Internal("Failed to create user", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, apperror.Internal("Failed to create user", err)
	}

	user, err := uc.userRepo.Create(in.Username, string(hashedPassword))
	if errors.Is(err, persistent.ErrDuplicate) {
		return nil, apperror.Conflict("Username already taken")
	}
	if err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, apperror.Internal("Failed to create user", err)
	}

	uc.logger.Info("User created: %s (%s)", user.Username, user.ID)
	return user, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.lookup(uc.userRepo.GetByID(id))
}

func (uc *userUseCase) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return uc.lookup(uc.userRepo.GetByUsername(username))
}

func (uc *userUseCase) lookup(user *entity.User, err error) (*entity.User, error) {
	if errors.Is(err, persistent.ErrNotFound) {
		return nil, apperror.NotFound(MsgUserNotFound)
	}
	if err != nil {
		return nil, apperror.Internal("Failed to fetch user", err)
	}
	return user, nil
}
