package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/giftlab/internal/models"
)

func TestCreateOrderEntryStatus(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)
	_, _, product := seedTree(t, db, "Gifts", false)

	plain := models.Order{
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Total:         700,
	}
	require.NoError(t, orders.CreateOrder(&plain, []models.OrderItem{
		{ProductID: product.ID, Quantity: 2, Price: product.Price},
	}))
	assert.Equal(t, models.OrderStatusAwaitingPayment, plain.Status)
	assert.Equal(t, 700.0, plain.OriginalTotal)
	require.NotZero(t, plain.ID)

	commented := models.Order{
		CustomerName: "Bob",
		Comment:      "engrave the mug",
		HasComment:   true,
		Total:        350,
		// Clients have no say in the entry status.
		Status: models.OrderStatusCompleted,
	}
	require.NoError(t, orders.CreateOrder(&commented, []models.OrderItem{
		{ProductID: product.ID, Quantity: 1, Price: product.Price},
	}))
	assert.Equal(t, models.OrderStatusUnderReview, commented.Status)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)

	err := orders.CreateOrder(&models.Order{CustomerName: "Alice"}, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, countRows(t, db, "orders"))
}

func TestCreateOrderRollsBackOnBadItem(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)
	_, _, product := seedTree(t, db, "Gifts", false)

	order := models.Order{CustomerName: "Alice", Total: 350}
	err := orders.CreateOrder(&order, []models.OrderItem{
		{ProductID: product.ID, Quantity: 1, Price: product.Price},
		{ProductID: 9999, Quantity: 1, Price: 10},
	})
	require.ErrorIs(t, err, ErrInvalidReference)

	// The whole order rolls back, including the valid first item.
	assert.Equal(t, 0, countRows(t, db, "orders"))
	assert.Equal(t, 0, countRows(t, db, "order_items"))
}

func TestListOrdersPendingGroup(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)
	_, _, product := seedTree(t, db, "Gifts", false)

	makeOrder := func(hasComment bool) int64 {
		o := models.Order{CustomerName: "Alice", Total: 350, HasComment: hasComment}
		require.NoError(t, orders.CreateOrder(&o, []models.OrderItem{
			{ProductID: product.ID, Quantity: 1, Price: product.Price},
		}))
		return o.ID
	}

	awaiting := makeOrder(false)
	underReview := makeOrder(true)
	done := makeOrder(false)
	require.NoError(t, orders.UpdateStatus(done, models.OrderStatusCompleted))
	cancelled := makeOrder(false)
	require.NoError(t, orders.UpdateStatus(cancelled, models.OrderStatusCancelled))

	pending, err := orders.ListOrders(models.OrderStatusPending, 0)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// Newest first.
	assert.Equal(t, underReview, pending[0].ID)
	assert.Equal(t, awaiting, pending[1].ID)

	completed, err := orders.ListOrders(models.OrderStatusCompleted, 0)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done, completed[0].ID)

	all, err := orders.ListOrders("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListOrdersCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)

	giftsCategory, _, mug := seedTree(t, db, "Gifts", false)
	_, _, magnet := seedTree(t, db, "Souvenirs", false)

	giftOrder := models.Order{CustomerName: "Alice", Total: 350}
	require.NoError(t, orders.CreateOrder(&giftOrder, []models.OrderItem{
		{ProductID: mug.ID, Quantity: 1, Price: mug.Price},
	}))
	souvenirOrder := models.Order{CustomerName: "Bob", Total: 350}
	require.NoError(t, orders.CreateOrder(&souvenirOrder, []models.OrderItem{
		{ProductID: magnet.ID, Quantity: 1, Price: magnet.Price},
	}))

	filtered, err := orders.ListOrders("", giftsCategory.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, giftOrder.ID, filtered[0].ID)

	// Item rows carry their catalog context for the back office.
	item := filtered[0].Items[0]
	assert.Equal(t, mug.Name, item.Name)
	assert.Equal(t, giftsCategory.ID, item.CategoryID)
	assert.Equal(t, giftsCategory.Name, item.CategoryName)
}

func TestListUserOrders(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)
	users := NewUserStore(db)
	_, _, product := seedTree(t, db, "Gifts", false)

	alice := models.User{Email: "alice@example.com", Password: "hash", Name: "Alice"}
	require.NoError(t, users.CreateUser(&alice))
	bob := models.User{Email: "bob@example.com", Password: "hash", Name: "Bob"}
	require.NoError(t, users.CreateUser(&bob))

	for _, userID := range []int64{alice.ID, alice.ID, bob.ID} {
		id := userID
		o := models.Order{UserID: &id, CustomerName: "x", Total: 350}
		require.NoError(t, orders.CreateOrder(&o, []models.OrderItem{
			{ProductID: product.ID, Quantity: 2, Price: product.Price},
		}))
	}
	guest := models.Order{CustomerName: "Guest", Total: 350}
	require.NoError(t, orders.CreateOrder(&guest, []models.OrderItem{
		{ProductID: product.ID, Quantity: 1, Price: product.Price},
	}))

	mine, err := orders.ListUserOrders(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].ID > mine[1].ID, "newest first")
	require.Len(t, mine[0].Items, 1)
	assert.Equal(t, 2, mine[0].Items[0].Quantity)
	assert.Equal(t, product.Name, mine[0].Items[0].Name)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)
	_, _, product := seedTree(t, db, "Gifts", false)

	o := models.Order{CustomerName: "Alice", Total: 350}
	require.NoError(t, orders.CreateOrder(&o, []models.OrderItem{
		{ProductID: product.ID, Quantity: 1, Price: product.Price},
	}))

	// Any member of the set may replace any other, terminal ones included.
	require.NoError(t, orders.UpdateStatus(o.ID, models.OrderStatusCompleted))
	require.NoError(t, orders.UpdateStatus(o.ID, models.OrderStatusPending))
	require.NoError(t, orders.UpdateStatus(o.ID, models.OrderStatusPending))

	assert.ErrorIs(t, orders.UpdateStatus(o.ID, "shipped"), ErrValidation)
	assert.ErrorIs(t, orders.UpdateStatus(9999, models.OrderStatusCancelled), ErrNotFound)
}

func TestUpdateTotalPreservesOriginal(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)
	_, _, product := seedTree(t, db, "Gifts", false)

	o := models.Order{CustomerName: "Alice", Total: 700}
	require.NoError(t, orders.CreateOrder(&o, []models.OrderItem{
		{ProductID: product.ID, Quantity: 2, Price: product.Price},
	}))

	require.NoError(t, orders.UpdateTotal(o.ID, 650))

	listed, err := orders.ListOrders("", 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 650.0, listed[0].Total)
	assert.Equal(t, 700.0, listed[0].OriginalTotal)

	assert.ErrorIs(t, orders.UpdateTotal(9999, 100), ErrNotFound)
}
