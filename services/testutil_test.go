package services

import (
	"fmt"
	"testing"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// unique shared-cache DSN so every pooled connection sees one database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.PaymentMethod{},
	))
	return db
}

type fixture struct {
	db       *gorm.DB
	carts    *repository.CartRepository
	orders   *repository.OrderRepository
	cartSvc  *CartService
	checkout *CheckoutService

	pizzeria entity.Restaurant
	diner    entity.Restaurant
	dhaba    entity.Restaurant

	margherita entity.MenuItem // pizzeria, 10.00
	tiramisu   entity.MenuItem // pizzeria, 5.00
	burger     entity.MenuItem // diner, 5.00
	dosa       entity.MenuItem // dhaba (India), 4.25

	alice entity.User // member, America
	bob   entity.User // member, America
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{db: db}
	f.carts = repository.NewCartRepository(db)
	f.orders = repository.NewOrderRepository(db)
	menu := repository.NewMenuRepository(db)
	f.cartSvc = NewCartService(db, f.carts, menu)
	f.checkout = NewCheckoutService(db, f.carts, f.orders)

	f.pizzeria = entity.Restaurant{Name: "Napoli Slice", Country: "America"}
	f.diner = entity.Restaurant{Name: "Liberty Diner", Country: "America"}
	f.dhaba = entity.Restaurant{Name: "Spice Garden", Country: "India"}
	require.NoError(t, db.Create(&f.pizzeria).Error)
	require.NoError(t, db.Create(&f.diner).Error)
	require.NoError(t, db.Create(&f.dhaba).Error)

	f.margherita = entity.MenuItem{RestaurantID: f.pizzeria.ID, Name: "Pizza Margherita", Price: price("10.00")}
	f.tiramisu = entity.MenuItem{RestaurantID: f.pizzeria.ID, Name: "Tiramisu", Price: price("5.00")}
	f.burger = entity.MenuItem{RestaurantID: f.diner.ID, Name: "Cheeseburger", Price: price("5.00")}
	f.dosa = entity.MenuItem{RestaurantID: f.dhaba.ID, Name: "Masala Dosa", Price: price("4.25")}
	require.NoError(t, db.Create(&f.margherita).Error)
	require.NoError(t, db.Create(&f.tiramisu).Error)
	require.NoError(t, db.Create(&f.burger).Error)
	require.NoError(t, db.Create(&f.dosa).Error)

	f.alice = entity.User{Name: "Alice", Email: "alice@example.com", Role: "member", Country: "America"}
	f.bob = entity.User{Name: "Bob", Email: "bob@example.com", Role: "member", Country: "America"}
	require.NoError(t, db.Create(&f.alice).Error)
	require.NoError(t, db.Create(&f.bob).Error)

	return f
}

func (f *fixture) aliceActor() Actor { return Actor{UserID: f.alice.ID, Role: "member", Country: "America"} }
func (f *fixture) bobActor() Actor   { return Actor{UserID: f.bob.ID, Role: "member", Country: "America"} }
func (f *fixture) adminActor() Actor { return Actor{UserID: 999, Role: "admin", Country: "America"} }

func money(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Equal(t, want, got.StringFixed(2))
}
