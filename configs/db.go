package configs

import (
	"github.com/FookNaRak/ITFoodFlow/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// Migrate สร้างตารางถ้ายังไม่มี (รันซ้ำได้)
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.UserAccount{},
		&entity.Shop{},
		&entity.Menu{},
		&entity.Cart{},
		&entity.Order{},
	)
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		panic(err)
	}
}
