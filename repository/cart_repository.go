package repository

import (
	"github.com/FookNaRak/ITFoodFlow/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// CartLineView คือแถว cart join กับ menu สำหรับหน้า cart
type CartLineView struct {
	MenuID    uint    `gorm:"column:menuID" json:"menuID"`
	Quantity  int     `gorm:"column:quantity" json:"quantity"`
	Note      *string `gorm:"column:note" json:"note"`
	MenuName  string  `gorm:"column:menuName" json:"menuName"`
	MenuPrice float64 `gorm:"column:menuPrice" json:"menuPrice"`
	MenuImage []byte  `gorm:"column:menuImage" json:"-"`
}

// ListWithMenu ไม่กรองตาม user — พฤติกรรมเดิมของระบบ (single tenant)
func (r *CartRepository) ListWithMenu() ([]CartLineView, error) {
	rows := make([]CartLineView, 0)
	err := r.DB.Table("cart AS c").
		Select("c.menuID, c.quantity, c.note, m.menuName, m.menuPrice, m.image AS menuImage").
		Joins("JOIN menu m ON m.menuID = c.menuID").
		Scan(&rows).Error
	return rows, err
}

func (r *CartRepository) ListRaw() ([]entity.Cart, error) {
	rows := make([]entity.Cart, 0)
	err := r.DB.Find(&rows).Error
	return rows, err
}

func (r *CartRepository) FindLine(menuID, userID uint) (*entity.Cart, error) {
	var line entity.Cart
	if err := r.DB.Where("menuID = ? AND userID = ?", menuID, userID).First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// Upsert เขียนครั้งเดียวแบบ atomic: ชน unique (menuID,userID) แล้วบวก quantity
// และเปลี่ยน note เฉพาะเมื่อส่งมาใหม่ (NULL ไม่ทับของเดิม)
func (r *CartRepository) Upsert(line *entity.Cart) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "menuID"}, {Name: "userID"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart.quantity + excluded.quantity"),
			"note":     gorm.Expr("COALESCE(excluded.note, cart.note)"),
		}),
	}).Create(line).Error
}

func (r *CartRepository) DeleteByMenu(menuID uint) error {
	// ไม่กรองตาม user — พฤติกรรมเดิม
	return r.DB.Where("menuID = ?", menuID).Delete(&entity.Cart{}).Error
}

func (r *CartRepository) ListForUser(tx *gorm.DB, userID uint) ([]entity.Cart, error) {
	rows := make([]entity.Cart, 0)
	err := tx.Where("userID = ?", userID).Find(&rows).Error
	return rows, err
}

func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("userID = ?", userID).Delete(&entity.Cart{}).Error
}
