// repository/menu_repository.go
package repository

import (
	"github.com/FookNaRak/ITFoodFlow/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ดึงเมนูทั้งหมดของร้าน (รวมรูป)
func (r *MenuRepository) FindByShop(shopID uint) ([]entity.Menu, error) {
	menus := make([]entity.Menu, 0)
	err := r.DB.Where("shopID = ?", shopID).Find(&menus).Error
	return menus, err
}

// ดึงเมนูทั้งหมด เฉพาะคอลัมน์ที่ไม่ใช่รูป
func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	menus := make([]entity.Menu, 0)
	err := r.DB.Select("menuID, shopID, menuName, menuPrice").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.Select("menuID, shopID, menuName, menuPrice").First(&menu, id).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) FindImage(id uint) ([]byte, error) {
	var menu entity.Menu
	if err := r.DB.Select("menuID, image").First(&menu, id).Error; err != nil {
		return nil, err
	}
	return menu.Image, nil
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}
