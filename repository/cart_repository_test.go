package repository

import (
	"fmt"
	"testing"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Restaurant{}, &entity.MenuItem{}, &entity.Cart{}, &entity.CartItem{}))
	return db
}

func TestSaveRejectsStaleVersion(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	cart := &entity.Cart{UserID: 1, RestaurantID: 1, RestaurantName: "Napoli Slice", Country: "America"}
	require.NoError(t, repo.Create(db, cart))

	stale := *cart
	cart.Subtotal = decimal.RequireFromString("20.00")
	require.NoError(t, repo.Save(db, cart))

	// a writer holding the pre-save snapshot loses the race
	stale.Subtotal = decimal.RequireFromString("10.00")
	err := repo.Save(db, &stale)
	require.ErrorIs(t, err, apperr.ErrConflict)

	reloaded, err := repo.GetByUser(1)
	require.NoError(t, err)
	require.Equal(t, "20.00", reloaded.Subtotal.StringFixed(2))
}

func TestDeleteFreesUserForNewCart(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	cart := &entity.Cart{UserID: 7, RestaurantID: 1}
	require.NoError(t, repo.Create(db, cart))
	require.NoError(t, repo.Delete(db, cart.ID))

	// the unique user index must not be held by a deleted row
	again := &entity.Cart{UserID: 7, RestaurantID: 2}
	require.NoError(t, repo.Create(db, again))
}

func TestGetByItemIDCrossesCarts(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)

	a := &entity.Cart{UserID: 1, RestaurantID: 1}
	b := &entity.Cart{UserID: 2, RestaurantID: 1}
	require.NoError(t, repo.Create(db, a))
	require.NoError(t, repo.Create(db, b))

	item := &entity.CartItem{CartID: b.ID, MenuItemID: 5, Quantity: 1, Price: decimal.RequireFromString("4.00")}
	require.NoError(t, repo.CreateItem(db, item))

	found, err := repo.GetByItemID(item.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, b.ID, found.ID)

	missing, err := repo.GetByItemID(9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}
