package services

import (
	"testing"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"

	"github.com/stretchr/testify/require"
)

func TestAggregateSumsPerCartTotals(t *testing.T) {
	f := newFixture(t)

	_, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.tiramisu.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = f.cartSvc.Add(f.bobActor(), &AddToCartIn{MenuItemID: f.burger.ID, Quantity: 1})
	require.NoError(t, err)

	agg, err := f.cartSvc.GetAggregate(f.adminActor())
	require.NoError(t, err)
	require.True(t, agg.IsAdminView)
	require.NotNil(t, agg.TotalCarts)
	require.Equal(t, 2, *agg.TotalCarts)
	require.Len(t, agg.Items, 3)

	// alice: 25.00 + 2.50 + 2.99; bob: 5.00 + 0.50 + 2.99
	money(t, "30.00", agg.Subtotal)
	money(t, "3.00", agg.Tax)
	money(t, "5.98", agg.DeliveryFee)
	money(t, "38.98", agg.Total)
	require.Equal(t, "Multiple Restaurants", *agg.RestaurantName)
}

func TestAggregateStampsProvenance(t *testing.T) {
	f := newFixture(t)

	own, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 1})
	require.NoError(t, err)

	agg, err := f.cartSvc.GetAggregate(f.adminActor())
	require.NoError(t, err)
	require.Len(t, agg.Items, 1)

	line := agg.Items[0]
	require.Equal(t, own.Items[0].ID, line.ID)
	require.NotZero(t, line.CartID)
	require.Equal(t, f.alice.ID, line.UserID)
	require.Equal(t, "Alice", line.UserName)
	require.Equal(t, "alice@example.com", line.UserEmail)
	require.Equal(t, "Napoli Slice", line.RestaurantName)
	require.Equal(t, "America", line.RestaurantCountry)
}

func TestAggregateFiltersByCountry(t *testing.T) {
	f := newFixture(t)

	_, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 1})
	require.NoError(t, err)

	indiaManager := Actor{UserID: 998, Role: "manager", Country: "India"}
	agg, err := f.cartSvc.GetAggregate(indiaManager)
	require.NoError(t, err)
	require.Empty(t, agg.Items)
	require.Equal(t, 0, *agg.TotalCarts)
	money(t, "0.00", agg.Total)
}

func TestAggregateSkipsDanglingRestaurant(t *testing.T) {
	f := newFixture(t)

	_, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = f.cartSvc.Add(f.bobActor(), &AddToCartIn{MenuItemID: f.burger.ID, Quantity: 1})
	require.NoError(t, err)

	// alice's restaurant vanishes underneath her cart
	require.NoError(t, f.db.Unscoped().Delete(&entity.Restaurant{}, f.pizzeria.ID).Error)

	agg, err := f.cartSvc.GetAggregate(f.adminActor())
	require.NoError(t, err)
	require.Equal(t, 1, *agg.TotalCarts)
	require.Len(t, agg.Items, 1)
	require.Equal(t, f.burger.ID, agg.Items[0].MenuItemID)
}

func TestAggregateRequiresPrivilegedRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.cartSvc.GetAggregate(f.aliceActor())
	require.ErrorIs(t, err, apperr.ErrForbidden)
}
