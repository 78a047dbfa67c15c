package entity

type Shop struct {
	ShopID        uint   `gorm:"column:shopID;primaryKey;autoIncrement" json:"shopID"`
	ShopName      string `gorm:"column:shopName" json:"shopName"`
	ShopOwnerName string `gorm:"column:shopOwnerName" json:"shopOwnerName"`
	ShopEmail     string `gorm:"column:shopEmail" json:"shopEmail"`
	ShopOwnerTel  string `gorm:"column:shopOwnerTel" json:"shopOwnerTel"`
	Password      string `gorm:"column:password" json:"-"` // ปลอดภัย
	ShopPicture   []byte `gorm:"column:shopPicture;type:blob" json:"-"`
	UserID        uint   `gorm:"column:userID" json:"userID"`
}

func (Shop) TableName() string { return "shop" }
