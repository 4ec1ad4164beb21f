package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"special-sheets-crm/models"
)

func aggregateOrder() models.Order {
	return models.Order{
		Status: models.OrderStatusProcess,
		Products: []models.Product{
			{
				FullAmount:    1200,
				PrePaidAmount: 200,
				Installments: []models.Installment{
					{Amount: 500, PaidAmount: 500},
					{Amount: 500, PaidAmount: 120},
				},
			},
			{
				FullAmount:    300,
				PrePaidAmount: 300,
			},
		},
	}
}

func TestOrderTotals(t *testing.T) {
	order := aggregateOrder()

	assert.Equal(t, models.Money(1500), OrderTotalAmount(order))
	assert.Equal(t, models.Money(500), OrderTotalPrepaid(order))
	assert.Equal(t, models.Money(620), OrderTotalPaid(order))
}

func TestOrderTotals_EmptyOrder(t *testing.T) {
	var order models.Order

	assert.Equal(t, models.Money(0), OrderTotalAmount(order))
	assert.Equal(t, models.Money(0), OrderTotalPrepaid(order))
	assert.Equal(t, models.Money(0), OrderTotalPaid(order))
}

func TestDisplayStatus(t *testing.T) {
	cases := []struct {
		status models.OrderStatus
		want   string
	}{
		{models.OrderStatusPending, "Ожидание"},
		{models.OrderStatusProcess, "Активный"},
		{models.OrderStatusFinished, "Завершен"},
		{models.OrderStatusCancelled, "Отменен"},
		{"garbage", "Ожидание"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DisplayStatus(tc.status))
	}
}

func TestDisplayStatus_NotDerivedFromPayments(t *testing.T) {
	// Все строки оплачены, но статус остаётся тем, что записан в заказе.
	order := models.Order{
		Status: models.OrderStatusProcess,
		Products: []models.Product{
			{Installments: []models.Installment{{Amount: 100, PaidAmount: 100, CompletedDate: ptrDate(2024, time.June, 1)}}},
		},
	}
	assert.Equal(t, "Активный", DisplayStatus(order.Status))
}

func TestCanDeleteProduct(t *testing.T) {
	clean := models.Product{Installments: []models.Installment{{Amount: 100}}}
	assert.True(t, CanDeleteProduct(clean))

	noSchedule := models.Product{}
	assert.True(t, CanDeleteProduct(noSchedule))

	paid := models.Product{Installments: []models.Installment{{Amount: 100, PaidAmount: 1}}}
	assert.False(t, CanDeleteProduct(paid))
}

func TestCanDeleteOrder(t *testing.T) {
	order := aggregateOrder()
	assert.False(t, CanDeleteOrder(order))

	fresh := models.Order{Products: []models.Product{{Installments: []models.Installment{{Amount: 10}}}}}
	assert.True(t, CanDeleteOrder(fresh))
}

func ptrDate(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}
