package configs

import (
	"log"

	"github.com/FookNaRak/ITFoodFlow/entity"
)

// SeedDefaultShop สร้างร้านเริ่มต้น (shopID = 1) ที่หน้าร้านใช้
func SeedDefaultShop() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Shop{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	shop := entity.Shop{
		ShopName:      "IT Food Flow Canteen",
		ShopOwnerName: "IT FoodFlow",
		ShopEmail:     "canteen@itfoodflow.local",
	}
	if err := db.Create(&shop).Error; err != nil {
		return err
	}
	log.Println("seeded default shop:", shop.ShopID)
	return nil
}
