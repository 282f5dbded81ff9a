package services

import (
	"testing"

	"github.com/abhignanvemu2/restaurant-demo/entity"
	"github.com/abhignanvemu2/restaurant-demo/pkg/apperr"

	"github.com/stretchr/testify/require"
)

func TestPlaceOrdersRequiresPrivilegedRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkout.PlaceOrders(f.aliceActor(), &PlaceOrderIn{SelectedItems: []uint{1}})
	require.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestPlaceOrdersRejectsEmptySelection(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkout.PlaceOrders(f.adminActor(), &PlaceOrderIn{})
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestPlaceOrdersGroupsBySourceCart(t *testing.T) {
	f := newFixture(t)

	aliceView, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 2})
	require.NoError(t, err)
	aliceView, err = f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.tiramisu.ID, Quantity: 1})
	require.NoError(t, err)
	bobView, err := f.cartSvc.Add(f.bobActor(), &AddToCartIn{MenuItemID: f.burger.ID, Quantity: 1})
	require.NoError(t, err)

	var margheritaLine uint
	for _, it := range aliceView.Items {
		if it.MenuItemID == f.margherita.ID {
			margheritaLine = it.ID
		}
	}

	out, err := f.checkout.PlaceOrders(f.adminActor(), &PlaceOrderIn{
		SelectedItems:   []uint{margheritaLine, bobView.Items[0].ID},
		DeliveryAddress: "1 Main St",
		PaymentMethod:   "credit",
	})
	require.NoError(t, err)
	require.Equal(t, 2, out.Created)
	require.Len(t, out.Orders, 2)

	byUser := map[uint]entity.Order{}
	for _, o := range out.Orders {
		byUser[o.UserID] = o
	}

	// each order carries only its own group's lines and totals
	aliceOrder := byUser[f.alice.ID]
	require.Len(t, aliceOrder.Items, 1)
	require.Equal(t, f.margherita.ID, aliceOrder.Items[0].MenuItemID)
	money(t, "20.00", aliceOrder.Subtotal)
	money(t, "24.99", aliceOrder.Total)
	require.Equal(t, entity.OrderStatusPending, aliceOrder.Status)
	require.Equal(t, "1 Main St", aliceOrder.DeliveryAddress)
	require.Equal(t, "credit", aliceOrder.PaymentMethod)

	bobOrder := byUser[f.bob.ID]
	require.Len(t, bobOrder.Items, 1)
	money(t, "5.00", bobOrder.Subtotal)
	money(t, "8.49", bobOrder.Total)
}

func TestPlaceOrdersPrunesSourceCarts(t *testing.T) {
	f := newFixture(t)

	aliceView, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 2})
	require.NoError(t, err)
	aliceView, err = f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.tiramisu.ID, Quantity: 1})
	require.NoError(t, err)
	bobView, err := f.cartSvc.Add(f.bobActor(), &AddToCartIn{MenuItemID: f.burger.ID, Quantity: 1})
	require.NoError(t, err)

	var margheritaLine uint
	for _, it := range aliceView.Items {
		if it.MenuItemID == f.margherita.ID {
			margheritaLine = it.ID
		}
	}

	_, err = f.checkout.PlaceOrders(f.adminActor(), &PlaceOrderIn{
		SelectedItems: []uint{margheritaLine, bobView.Items[0].ID},
	})
	require.NoError(t, err)

	// alice keeps her unselected line with recomputed totals
	alice, err := f.cartSvc.Get(f.aliceActor())
	require.NoError(t, err)
	require.Len(t, alice.Items, 1)
	require.Equal(t, f.tiramisu.ID, alice.Items[0].MenuItemID)
	money(t, "5.00", alice.Subtotal)
	money(t, "8.49", alice.Total)

	// bob's cart drained to zero and was deleted outright
	bob, err := f.cartSvc.Get(f.bobActor())
	require.NoError(t, err)
	require.Empty(t, bob.Items)

	var count int64
	require.NoError(t, f.db.Model(&entity.Cart{}).Where("user_id = ?", f.bob.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestPlaceOrdersSkipsDanglingSelections(t *testing.T) {
	f := newFixture(t)

	view, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 1})
	require.NoError(t, err)

	out, err := f.checkout.PlaceOrders(f.adminActor(), &PlaceOrderIn{
		SelectedItems: []uint{view.Items[0].ID, 4242, 4343},
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.Created)
}

func TestPlaceOrdersAllDanglingCreatesNothing(t *testing.T) {
	f := newFixture(t)

	out, err := f.checkout.PlaceOrders(f.adminActor(), &PlaceOrderIn{
		SelectedItems: []uint{4242, 4343},
	})
	require.NoError(t, err)
	require.Zero(t, out.Created)
	require.Empty(t, out.Orders)
}

func TestPlaceOrdersRetryWithSameKeyDoesNotDuplicate(t *testing.T) {
	f := newFixture(t)

	_, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 2})
	require.NoError(t, err)
	view, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.tiramisu.ID, Quantity: 1})
	require.NoError(t, err)

	var margheritaLine uint
	for _, it := range view.Items {
		if it.MenuItemID == f.margherita.ID {
			margheritaLine = it.ID
		}
	}

	in := &PlaceOrderIn{SelectedItems: []uint{margheritaLine}, IdempotencyKey: "retry-1"}
	first, err := f.checkout.PlaceOrders(f.adminActor(), in)
	require.NoError(t, err)
	require.Equal(t, 1, first.Created)

	// the line is gone, so the retry resolves nothing new; the recorded
	// order count must not grow
	second, err := f.checkout.PlaceOrders(f.adminActor(), &PlaceOrderIn{
		SelectedItems: []uint{margheritaLine}, IdempotencyKey: "retry-1",
	})
	require.NoError(t, err)
	require.Zero(t, second.Created)

	var count int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestPlaceOrdersReplayReportsExistingOrderAsNotCreated(t *testing.T) {
	f := newFixture(t)

	_, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 1})
	require.NoError(t, err)
	view, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.tiramisu.ID, Quantity: 1})
	require.NoError(t, err)

	var margheritaLine, tiramisuLine uint
	for _, it := range view.Items {
		switch it.MenuItemID {
		case f.margherita.ID:
			margheritaLine = it.ID
		case f.tiramisu.ID:
			tiramisuLine = it.ID
		}
	}

	first, err := f.checkout.PlaceOrders(f.adminActor(), &PlaceOrderIn{
		SelectedItems: []uint{margheritaLine}, IdempotencyKey: "replay-1",
	})
	require.NoError(t, err)
	require.Equal(t, 1, first.Created)
	require.Zero(t, first.Replayed)

	// same key, same source cart: the surviving line resolves but the
	// existing order is returned instead of a new one being written
	second, err := f.checkout.PlaceOrders(f.adminActor(), &PlaceOrderIn{
		SelectedItems: []uint{tiramisuLine}, IdempotencyKey: "replay-1",
	})
	require.NoError(t, err)
	require.Zero(t, second.Created)
	require.Equal(t, 1, second.Replayed)
	require.Len(t, second.Orders, 1)
	require.Equal(t, first.Orders[0].ID, second.Orders[0].ID)

	var count int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestPlaceOrdersDuplicateSelectionCountsOnce(t *testing.T) {
	f := newFixture(t)

	view, err := f.cartSvc.Add(f.aliceActor(), &AddToCartIn{MenuItemID: f.margherita.ID, Quantity: 2})
	require.NoError(t, err)
	line := view.Items[0].ID

	out, err := f.checkout.PlaceOrders(f.adminActor(), &PlaceOrderIn{
		SelectedItems: []uint{line, line, line},
	})
	require.NoError(t, err)
	require.Equal(t, 1, out.Created)
	require.Len(t, out.Orders[0].Items, 1)
	money(t, "20.00", out.Orders[0].Subtotal)
}
