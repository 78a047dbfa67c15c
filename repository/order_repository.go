package repository

import (
	"github.com/FookNaRak/ITFoodFlow/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	err := r.DB.Where("userID = ?", userID).Find(&orders).Error
	return orders, err
}

// TrackingRow คือผลของหน้า tracking
// ดึงข้อมูลตามนี้ แล้วส่งไป
type TrackingRow struct {
	OrderID  uint    `gorm:"column:orderID" json:"orderID"`
	MenuItem string  `gorm:"column:menuItem" json:"menuItem"`
	Price    float64 `gorm:"column:price" json:"price"`
	Queue    int     `gorm:"column:queue" json:"queue"`
	Status   string  `gorm:"column:status" json:"status"`
}

// TrackForUser: queue นับ order ทั้งระบบที่ orderID น้อยกว่า (ทุก user ทุกร้าน)
// status เป็น completed เฉพาะ order ล่าสุดของ user นั้น ที่เหลือ in queue
func (r *OrderRepository) TrackForUser(userID uint) ([]TrackingRow, error) {
	rows := make([]TrackingRow, 0)
	err := r.DB.Raw(`
		SELECT o.orderID, m.menuName AS menuItem, m.menuPrice AS price,
		       (SELECT COUNT(*) FROM "order" WHERE orderID < o.orderID) AS queue,
		       CASE WHEN o.orderID = (SELECT MAX(orderID) FROM "order" WHERE userID = ?)
		            THEN 'completed' ELSE 'in queue' END AS status
		  FROM "order" o
		  JOIN menu m ON o.menuID = m.menuID
		 WHERE o.userID = ?
		 ORDER BY o.orderID ASC`, userID, userID).Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) GetMenuShop(tx *gorm.DB, menuID uint) (uint, error) {
	var menu entity.Menu
	if err := tx.Select("menuID, shopID").First(&menu, menuID).Error; err != nil {
		return 0, err
	}
	return menu.ShopID, nil
}

func (r *OrderRepository) CreateBatch(tx *gorm.DB, orders []entity.Order) error {
	return tx.Create(&orders).Error
}
