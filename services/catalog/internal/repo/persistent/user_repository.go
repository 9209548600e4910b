package persistent

import (
	"creator-hub/services/catalog/internal/entity"
	"creator-hub/services/catalog/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(username, passwordHash string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(username, passwordHash string) (*entity.User, error) {
	userModel := &model.UserModel{
		Username: username,
		Password: passwordHash,
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(userModel), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}
