package services

import (
	"errors"
	"time"

	"github.com/FookNaRak/ITFoodFlow/entity"
	"github.com/FookNaRak/ITFoodFlow/repository"

	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) Track(userID uint) ([]repository.TrackingRow, error) {
	return s.Repo.TrackForUser(userID)
}

// Checkout แปลงตะกร้าของ user เป็น order (หนึ่งบรรทัดต่อหนึ่ง order)
// แล้วล้างตะกร้า ทำใน transaction เดียว
func (s *OrderService) Checkout(userID uint) ([]uint, error) {
	var ids []uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListForUser(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		stamp := time.Now().Format(time.RFC3339)
		orders := make([]entity.Order, 0, len(lines))
		for _, l := range lines {
			shopID, err := s.Repo.GetMenuShop(tx, l.MenuID)
			if err != nil {
				return err
			}
			orders = append(orders, entity.Order{
				MenuID:    l.MenuID,
				ShopID:    shopID,
				OrderTime: stamp,
				UserID:    userID,
			})
		}

		if err := s.Repo.CreateBatch(tx, orders); err != nil {
			return err
		}
		if err := s.CartRepo.ClearForUser(tx, userID); err != nil {
			return err
		}

		for _, o := range orders {
			ids = append(ids, o.OrderID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
