package repository

import (
	"github.com/FookNaRak/ITFoodFlow/entity"
	"gorm.io/gorm"
)

type ShopRepository struct{ DB *gorm.DB }

func NewShopRepository(db *gorm.DB) *ShopRepository { return &ShopRepository{DB: db} }

func (r *ShopRepository) FindAll() ([]entity.Shop, error) {
	shops := make([]entity.Shop, 0)
	err := r.DB.Find(&shops).Error
	return shops, err
}

func (r *ShopRepository) Create(tx *gorm.DB, shop *entity.Shop) error {
	return tx.Create(shop).Error
}
