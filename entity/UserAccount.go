package entity

// UserAccount ใช้ role เป็น "Shop Owner" หรือ "Customer"
type UserAccount struct {
	UserID   uint   `gorm:"column:userID;primaryKey;autoIncrement" json:"userID"`
	Username string `gorm:"column:username" json:"username"`
	Password string `gorm:"column:password" json:"-"` // ปลอดภัย
	Email    string `gorm:"column:email" json:"email"`
	Role     string `gorm:"column:role" json:"role"`
}

func (UserAccount) TableName() string { return "useraccount" }
