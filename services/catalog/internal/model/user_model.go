package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID       string `gorm:"type:uuid;primary_key" json:"id"`
	Username string `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Password string `gorm:"type:text;not null" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
