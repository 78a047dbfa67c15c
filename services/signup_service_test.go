package services

import (
	"testing"

	"github.com/FookNaRak/ITFoodFlow/entity"
	"github.com/FookNaRak/ITFoodFlow/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newSignupService(db *gorm.DB) *SignupService {
	return NewSignupService(db, repository.NewUserRepository(db), repository.NewShopRepository(db))
}

func TestRegisterShopCreatesAccountAndShop(t *testing.T) {
	db := newTestDB(t)
	svc := newSignupService(db)

	shopID, err := svc.RegisterShop(&ShopSignupIn{
		ShopName:           "Somtam Corner",
		ShopOwnerFirstName: "Nok",
		ShopOwnerLastName:  "S",
		ShopEmail:          "nok@example.com",
		ShopOwnerTel:       "0812345678",
		Password:           "secret123",
	})
	require.NoError(t, err)
	require.NotZero(t, shopID)

	var shop entity.Shop
	require.NoError(t, db.First(&shop, shopID).Error)
	assert.Equal(t, "Somtam Corner", shop.ShopName)
	assert.Equal(t, "Nok S", shop.ShopOwnerName)
	require.NotZero(t, shop.UserID)

	var user entity.UserAccount
	require.NoError(t, db.First(&user, shop.UserID).Error)
	assert.Equal(t, "Shop Owner", user.Role)
	assert.Equal(t, "Nok.S", user.Username)

	// ไม่เก็บรหัสผ่าน plaintext
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterShopRollsBackAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newSignupService(db)

	// ทำให้ insert ร้านพัง → บัญชีที่สร้างก่อนหน้าต้องหายไปด้วย
	require.NoError(t, db.Migrator().DropTable(&entity.Shop{}))

	_, err := svc.RegisterShop(&ShopSignupIn{
		ShopName:           "Broken Shop",
		ShopOwnerFirstName: "A",
		ShopOwnerLastName:  "B",
		ShopEmail:          "ab@example.com",
		Password:           "secret123",
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.UserAccount{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRegisterCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newSignupService(db)

	userID, err := svc.RegisterCustomer("Mai", "T", "mai@example.com", "secret123")
	require.NoError(t, err)
	require.NotZero(t, userID)

	var user entity.UserAccount
	require.NoError(t, db.First(&user, userID).Error)
	assert.Equal(t, "Customer", user.Role)
	assert.Equal(t, "mai@example.com", user.Email)
}
