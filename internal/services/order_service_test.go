package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/models"
)

func TestCheckoutDemoScenario(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "demo@stones.test")
	sapphire := createTestStone(t, db, "blue-sapphire", "2500.00")
	cart := NewCartService(db)
	orders := NewOrderService(db)

	_, err := cart.Add(user.ID, sapphire.ID, 2)
	require.NoError(t, err)

	order, err := orders.Create(user.ID, &dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{
			StoneID:   sapphire.ID,
			Quantity:  2,
			UnitPrice: mustDecimal(t, "2500.00"),
			LineTotal: mustDecimal(t, "5000.00"),
		}},
		Subtotal:    mustDecimal(t, "5000.00"),
		ShippingFee: mustDecimal(t, "15.00"),
		Total:       mustDecimal(t, "5015.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderPending, order.Status)
	assert.True(t, order.Subtotal.Equal(mustDecimal(t, "5000.00")))
	assert.True(t, order.Total.Equal(mustDecimal(t, "5015.00")))

	items, err := cart.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items, "cart should be empty after checkout")
}

func TestOrderSnapshotSurvivesCatalogPriceChange(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "ruby-heart", "3200.00")
	orders := NewOrderService(db)

	order, err := orders.Create(user.ID, &dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{
			StoneID:   stone.ID,
			Quantity:  1,
			UnitPrice: mustDecimal(t, "3200.00"),
			LineTotal: mustDecimal(t, "3200.00"),
		}},
		Subtotal: mustDecimal(t, "3200.00"),
		Total:    mustDecimal(t, "3200.00"),
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Stone{}).
		Where("id = ?", stone.ID).
		Update("price", mustDecimal(t, "9999.00")).Error)

	loaded, err := orders.GetByID(order.ID, &user.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.True(t, loaded.Items[0].UnitPrice.Equal(mustDecimal(t, "3200.00")))
	assert.True(t, loaded.Subtotal.Equal(mustDecimal(t, "3200.00")))
}

func TestOrderCreateRejectsNegativeAmounts(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "2500.00")
	orders := NewOrderService(db)

	_, err := orders.Create(user.ID, &dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{
			StoneID:   stone.ID,
			Quantity:  1,
			UnitPrice: mustDecimal(t, "2500.00"),
			LineTotal: mustDecimal(t, "2500.00"),
		}},
		Subtotal:    mustDecimal(t, "2500.00"),
		ShippingFee: mustDecimal(t, "-5.00"),
		Total:       mustDecimal(t, "2495.00"),
	})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestOrderCreateRejectsInconsistentLineTotal(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "2500.00")
	orders := NewOrderService(db)

	_, err := orders.Create(user.ID, &dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{
			StoneID:   stone.ID,
			Quantity:  2,
			UnitPrice: mustDecimal(t, "2500.00"),
			LineTotal: mustDecimal(t, "2500.00"),
		}},
		Subtotal: mustDecimal(t, "2500.00"),
		Total:    mustDecimal(t, "2500.00"),
	})
	assert.ErrorIs(t, err, ErrInconsistentTotals)
}

func TestOrderOwnershipReadsAsNotFound(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "2500.00")
	orders := NewOrderService(db)

	order, err := orders.Create(alice.ID, &dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{
			StoneID:   stone.ID,
			Quantity:  1,
			UnitPrice: mustDecimal(t, "2500.00"),
			LineTotal: mustDecimal(t, "2500.00"),
		}},
		Subtotal: mustDecimal(t, "2500.00"),
		Total:    mustDecimal(t, "2500.00"),
	})
	require.NoError(t, err)

	_, err = orders.GetByID(order.ID, &bob.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Admin path with nil userID sees it.
	loaded, err := orders.GetByID(order.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, loaded.UserID)
}

func createPendingOrder(t *testing.T, orders *OrderService, userID, stoneID uint) *models.Order {
	t.Helper()
	order, err := orders.Create(userID, &dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{
			StoneID:   stoneID,
			Quantity:  1,
			UnitPrice: mustDecimal(t, "100.00"),
			LineTotal: mustDecimal(t, "100.00"),
		}},
		Subtotal: mustDecimal(t, "100.00"),
		Total:    mustDecimal(t, "100.00"),
	})
	require.NoError(t, err)
	return order
}

func TestOrderStatusHappyPath(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "100.00")
	orders := NewOrderService(db)
	order := createPendingOrder(t, orders, user.ID, stone.ID)

	for _, status := range []string{models.OrderPaid, models.OrderShipped, models.OrderDelivered} {
		updated, err := orders.UpdateStatus(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestOrderStatusRejectsBackwardTransition(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "100.00")
	orders := NewOrderService(db)
	order := createPendingOrder(t, orders, user.ID, stone.ID)

	_, err := orders.UpdateStatus(order.ID, models.OrderPaid)
	require.NoError(t, err)
	_, err = orders.UpdateStatus(order.ID, models.OrderShipped)
	require.NoError(t, err)

	_, err = orders.UpdateStatus(order.ID, models.OrderPending)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestOrderStatusTerminalStates(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "100.00")
	orders := NewOrderService(db)
	order := createPendingOrder(t, orders, user.ID, stone.ID)

	_, err := orders.UpdateStatus(order.ID, models.OrderCancelled)
	require.NoError(t, err)

	_, err = orders.UpdateStatus(order.ID, models.OrderPaid)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestOrderStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "100.00")
	orders := NewOrderService(db)
	order := createPendingOrder(t, orders, user.ID, stone.ID)

	_, err := orders.UpdateStatus(order.ID, "REFUNDED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListByUserNewestFirstWithoutItems(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "100.00")
	orders := NewOrderService(db)

	createPendingOrder(t, orders, user.ID, stone.ID)
	createPendingOrder(t, orders, user.ID, stone.ID)

	list, err := orders.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Empty(t, list[0].Items)
}

func TestListAllIncludesPurchaser(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	stone := createTestStone(t, db, "blue-sapphire", "100.00")
	orders := NewOrderService(db)
	createPendingOrder(t, orders, user.ID, stone.ID)

	list, err := orders.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].User)
	assert.Equal(t, "alice@example.com", list[0].User.Email)
}
