package repository

import (
	"testing"

	"github.com/FookNaRak/ITFoodFlow/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAccumulatesQuantity(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 1, Quantity: 2}))
	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 1, Quantity: 3}))

	line, err := repo.FindLine(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)

	var count int64
	require.NoError(t, db.Model(&entity.Cart{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "exactly one line per (menu, user)")
}

func TestUpsertKeepsLinesPerUserSeparate(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 1, Quantity: 1}))
	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 2, Quantity: 1}))

	var count int64
	require.NoError(t, db.Model(&entity.Cart{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpsertNoteRules(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 1, Quantity: 1, Note: strptr("extra spicy")}))

	// note ที่ไม่ส่งมา ต้องไม่ลบของเดิม
	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 1, Quantity: 1}))
	line, err := repo.FindLine(1, 1)
	require.NoError(t, err)
	require.NotNil(t, line.Note)
	assert.Equal(t, "extra spicy", *line.Note)

	// note ใหม่ ทับของเดิม
	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 1, Quantity: 1, Note: strptr("no onion")}))
	line, err = repo.FindLine(1, 1)
	require.NoError(t, err)
	require.NotNil(t, line.Note)
	assert.Equal(t, "no onion", *line.Note)
}

func TestDeleteByMenuUnscoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 1, Quantity: 1}))
	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 2, Quantity: 1}))
	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 2, UserID: 1, Quantity: 1}))

	require.NoError(t, repo.DeleteByMenu(1))

	rows, err := repo.ListRaw()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(2), rows[0].MenuID)

	// ลบเมนูที่ไม่มีอยู่ ไม่ error
	require.NoError(t, repo.DeleteByMenu(99))
}

func TestListWithMenuJoinsEveryUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	require.NoError(t, db.Create(&entity.Menu{ShopID: 1, MenuName: "Pad Thai", MenuPrice: 60}).Error)
	require.NoError(t, db.Create(&entity.Menu{ShopID: 1, MenuName: "Green Curry", MenuPrice: 75}).Error)

	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 1, UserID: 1, Quantity: 2}))
	require.NoError(t, repo.Upsert(&entity.Cart{MenuID: 2, UserID: 7, Quantity: 1, Note: strptr("mild")}))

	rows, err := repo.ListWithMenu()
	require.NoError(t, err)
	// ไม่กรองตาม user — ได้ทุกตะกร้า
	require.Len(t, rows, 2)
	assert.Equal(t, "Pad Thai", rows[0].MenuName)
	assert.Equal(t, 60.0, rows[0].MenuPrice)
	assert.Equal(t, 2, rows[0].Quantity)
	require.NotNil(t, rows[1].Note)
	assert.Equal(t, "mild", *rows[1].Note)
}
