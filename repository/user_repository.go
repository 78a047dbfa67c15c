package repository

import (
	"github.com/FookNaRak/ITFoodFlow/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(tx *gorm.DB, user *entity.UserAccount) error {
	return tx.Create(user).Error
}
