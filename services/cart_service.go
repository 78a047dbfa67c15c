package services

import (
	"errors"
	"strings"

	"github.com/FookNaRak/ITFoodFlow/entity"
	"github.com/FookNaRak/ITFoodFlow/repository"
	"github.com/FookNaRak/ITFoodFlow/utils"

	"gorm.io/gorm"
)

type CartService struct {
	DB   *gorm.DB
	Repo *repository.CartRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository) *CartService {
	return &CartService{DB: db, Repo: repo}
}

type AddToCartIn struct {
	MenuID   uint    `json:"menuID" binding:"required"`
	UserID   uint    `json:"userID" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Note     *string `json:"note"`
}

type AddToCartResult struct {
	Updated bool
	CartID  uint
}

// Add เพิ่มหรือรวมรายการในตะกร้า: เมนูเดิมของ user เดิมจะบวก quantity
// note ว่างหรือไม่ส่งมา จะไม่ลบ note เดิม
func (s *CartService) Add(in *AddToCartIn) (*AddToCartResult, error) {
	note := in.Note
	if note != nil && strings.TrimSpace(*note) == "" {
		note = nil
	}

	existing, err := s.Repo.FindLine(in.MenuID, in.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	line := &entity.Cart{MenuID: in.MenuID, UserID: in.UserID, Quantity: in.Quantity, Note: note}
	if err := s.Repo.Upsert(line); err != nil {
		return nil, err
	}

	if existing != nil {
		return &AddToCartResult{Updated: true}, nil
	}
	return &AddToCartResult{CartID: line.CartID}, nil
}

type CartLineOut struct {
	MenuID    uint    `json:"menuID"`
	Quantity  int     `json:"quantity"`
	Note      *string `json:"note"`
	MenuName  string  `json:"menuName"`
	MenuPrice float64 `json:"menuPrice"`
	MenuImage *string `json:"menuImage"`
}

func (s *CartService) ListWithMenu() ([]CartLineOut, error) {
	rows, err := s.Repo.ListWithMenu()
	if err != nil {
		return nil, err
	}
	out := make([]CartLineOut, 0, len(rows))
	for _, r := range rows {
		out = append(out, CartLineOut{
			MenuID:    r.MenuID,
			Quantity:  r.Quantity,
			Note:      r.Note,
			MenuName:  r.MenuName,
			MenuPrice: r.MenuPrice,
			MenuImage: utils.PNGDataURI(r.MenuImage),
		})
	}
	return out, nil
}

func (s *CartService) ListRaw() ([]entity.Cart, error) {
	return s.Repo.ListRaw()
}

func (s *CartService) RemoveMenu(menuID uint) error {
	return s.Repo.DeleteByMenu(menuID)
}
