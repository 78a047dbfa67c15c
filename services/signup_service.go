package services

import (
	"strings"

	"github.com/FookNaRak/ITFoodFlow/entity"
	"github.com/FookNaRak/ITFoodFlow/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignupService struct {
	DB       *gorm.DB
	UserRepo *repository.UserRepository
	ShopRepo *repository.ShopRepository
}

func NewSignupService(db *gorm.DB, ur *repository.UserRepository, sr *repository.ShopRepository) *SignupService {
	return &SignupService{DB: db, UserRepo: ur, ShopRepo: sr}
}

type ShopSignupIn struct {
	ShopName           string
	ShopOwnerFirstName string
	ShopOwnerLastName  string
	ShopEmail          string
	ShopOwnerTel       string
	Password           string
	ShopPicture        []byte
}

// RegisterShop สร้าง useraccount ของเจ้าของร้านแล้วตามด้วยแถว shop
// ใน transaction เดียว ถ้า insert ร้านพัง บัญชีจะถูก rollback ด้วย
func (s *SignupService) RegisterShop(in *ShopSignupIn) (uint, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	ownerName := strings.TrimSpace(in.ShopOwnerFirstName + " " + in.ShopOwnerLastName)

	var shopID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user := &entity.UserAccount{
			Username: in.ShopOwnerFirstName + "." + in.ShopOwnerLastName,
			Password: string(hashed),
			Email:    in.ShopEmail,
			Role:     "Shop Owner",
		}
		if err := s.UserRepo.Create(tx, user); err != nil {
			return err
		}

		shop := &entity.Shop{
			ShopName:      in.ShopName,
			ShopOwnerName: ownerName,
			ShopEmail:     in.ShopEmail,
			ShopOwnerTel:  in.ShopOwnerTel,
			Password:      string(hashed),
			ShopPicture:   in.ShopPicture,
			UserID:        user.UserID,
		}
		if err := s.ShopRepo.Create(tx, shop); err != nil {
			return err
		}
		shopID = shop.ShopID
		return nil
	})
	return shopID, err
}

func (s *SignupService) RegisterCustomer(firstName, lastName, email, password string) (uint, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &entity.UserAccount{
		Username: firstName + "." + lastName,
		Password: string(hashed),
		Email:    email,
		Role:     "Customer",
	}
	if err := s.UserRepo.Create(s.DB, user); err != nil {
		return 0, err
	}
	return user.UserID, nil
}
