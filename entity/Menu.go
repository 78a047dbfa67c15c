package entity

type Menu struct {
	MenuID    uint    `gorm:"column:menuID;primaryKey;autoIncrement" json:"menuID"`
	ShopID    uint    `gorm:"column:shopID" json:"shopID"`
	MenuName  string  `gorm:"column:menuName" json:"menuName"`
	MenuPrice float64 `gorm:"column:menuPrice" json:"menuPrice"`

	// เก็บเนื้อรูปเป็น BLOB (ไม่ serialize ออกใน JSON)
	Image []byte `gorm:"column:image;type:blob" json:"-"`
}

func (Menu) TableName() string { return "menu" }
