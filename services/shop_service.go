package services

import (
	"github.com/FookNaRak/ITFoodFlow/entity"
	"github.com/FookNaRak/ITFoodFlow/repository"
)

type ShopService struct {
	Repo *repository.ShopRepository
}

func NewShopService(repo *repository.ShopRepository) *ShopService {
	return &ShopService{Repo: repo}
}

func (s *ShopService) List() ([]entity.Shop, error) {
	return s.Repo.FindAll()
}
