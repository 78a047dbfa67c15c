package entity

type Order struct {
	OrderID   uint   `gorm:"column:orderID;primaryKey;autoIncrement" json:"orderID"`
	MenuID    uint   `gorm:"column:menuID" json:"menuID"`
	ShopID    uint   `gorm:"column:shopID" json:"shopID"`
	OrderTime string `gorm:"column:orderTime" json:"orderTime"`
	UserID    uint   `gorm:"column:userID" json:"userID"`
}

func (Order) TableName() string { return "order" }
