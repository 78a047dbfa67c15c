package entity

// Cart คือรายการในตะกร้า หนึ่งแถวต่อ (เมนู, ผู้ใช้)
type Cart struct {
	CartID   uint    `gorm:"column:cartID;primaryKey;autoIncrement" json:"cartID"`
	MenuID   uint    `gorm:"column:menuID;uniqueIndex:uix_cart_menu_user" json:"menuID"`
	UserID   uint    `gorm:"column:userID;uniqueIndex:uix_cart_menu_user" json:"userID"`
	Quantity int     `gorm:"column:quantity" json:"quantity"`
	Note     *string `gorm:"column:note" json:"note"`
}

func (Cart) TableName() string { return "cart" }
