// services/menu_service.go
package services

import (
	"github.com/FookNaRak/ITFoodFlow/entity"
	"github.com/FookNaRak/ITFoodFlow/repository"
	"github.com/FookNaRak/ITFoodFlow/utils"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemOut struct {
	MenuID    uint    `json:"menuID"`
	MenuName  string  `json:"menuName"`
	MenuPrice float64 `json:"menuPrice"`
	MenuImage *string `json:"menuImage"`
}

// ListForShop คืนเมนูของร้าน รูปเป็น data URI หรือ null เสมอ ไม่ส่ง binary ดิบ
func (s *MenuService) ListForShop(shopID uint) ([]MenuItemOut, error) {
	menus, err := s.Repo.FindByShop(shopID)
	if err != nil {
		return nil, err
	}
	out := make([]MenuItemOut, 0, len(menus))
	for _, m := range menus {
		out = append(out, MenuItemOut{
			MenuID:    m.MenuID,
			MenuName:  m.MenuName,
			MenuPrice: m.MenuPrice,
			MenuImage: utils.PNGDataURI(m.Image),
		})
	}
	return out, nil
}

func (s *MenuService) ListAll() ([]entity.Menu, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Image(id uint) ([]byte, error) {
	return s.Repo.FindImage(id)
}

func (s *MenuService) Create(shopID uint, name string, price float64, image []byte) (uint, error) {
	menu := &entity.Menu{ShopID: shopID, MenuName: name, MenuPrice: price, Image: image}
	if err := s.Repo.Create(menu); err != nil {
		return 0, err
	}
	return menu.MenuID, nil
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
