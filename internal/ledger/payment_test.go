package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"special-sheets-crm/models"
)

// testOrder — заказ с одним товаром и графиком из двух строк по 100.
func testOrder() *models.Order {
	return &models.Order{
		ID:     1,
		Status: models.OrderStatusProcess,
		Products: []models.Product{
			{
				ID:            10,
				OrderID:       1,
				FullAmount:    200,
				PrePaidAmount: 0,
				Installments: []models.Installment{
					{ID: 100, ProductID: 10, Seq: 1, Amount: 100, ScheduledPayDay: date(2024, time.January, 1)},
					{ID: 101, ProductID: 10, Seq: 2, Amount: 100, ScheduledPayDay: date(2024, time.February, 1)},
				},
			},
		},
	}
}

func TestApplyPayment_FullPaymentSetsCompletedDate(t *testing.T) {
	order := testOrder()
	today := date(2024, time.January, 1)

	inst, err := ApplyPayment(order, 10, 100, 100, today)
	require.NoError(t, err)

	assert.Equal(t, models.Money(100), inst.PaidAmount)
	require.NotNil(t, inst.CompletedDate)
	assert.Equal(t, today, *inst.CompletedDate)
	assert.Equal(t, models.InstallmentStatusFullPaid, inst.Status)
	assert.Equal(t, StatusFullyPaid, Classify(*inst, today))

	// Мутация видна в самом заказе, а не в копии.
	assert.Equal(t, models.Money(100), order.Products[0].Installments[0].PaidAmount)
}

func TestApplyPayment_PartialLeavesInstallmentOpen(t *testing.T) {
	order := testOrder()

	inst, err := ApplyPayment(order, 10, 100, 40, date(2024, time.January, 5))
	require.NoError(t, err)
	assert.Equal(t, models.Money(40), inst.PaidAmount)
	assert.Nil(t, inst.CompletedDate)
	assert.Empty(t, inst.Status)
}

func TestApplyPayment_IsReplaceNotIncrement(t *testing.T) {
	order := testOrder()
	today := date(2024, time.January, 5)

	_, err := ApplyPayment(order, 10, 100, 40, today)
	require.NoError(t, err)

	// Исправление заново указывает итог строки, а не прибавляет к нему.
	inst, err := ApplyPayment(order, 10, 100, 30, today)
	require.NoError(t, err)
	assert.Equal(t, models.Money(30), inst.PaidAmount)
}

func TestApplyPayment_IdempotentOnRepeat(t *testing.T) {
	order := testOrder()
	today := date(2024, time.January, 5)

	first, err := ApplyPayment(order, 10, 100, 40, today)
	require.NoError(t, err)
	paidAfterFirst := first.PaidAmount

	second, err := ApplyPayment(order, 10, 100, 40, today)
	require.NoError(t, err)
	assert.Equal(t, paidAfterFirst, second.PaidAmount)
}

func TestApplyPayment_OverpaymentRejected(t *testing.T) {
	order := testOrder()

	_, err := ApplyPayment(order, 10, 100, 101, date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrOverpaymentRejected)

	// Строка не изменилась.
	assert.Equal(t, models.Money(0), order.Products[0].Installments[0].PaidAmount)

	// Граничный случай: оплата ровно в сумму строки проходит.
	inst, err := ApplyPayment(order, 10, 100, 100, date(2024, time.January, 1))
	require.NoError(t, err)
	assert.NotNil(t, inst.CompletedDate)
}

func TestApplyPayment_SettledInstallmentIsImmutable(t *testing.T) {
	order := testOrder()
	today := date(2024, time.January, 1)

	_, err := ApplyPayment(order, 10, 100, 100, today)
	require.NoError(t, err)

	_, err = ApplyPayment(order, 10, 100, 50, today)
	assert.ErrorIs(t, err, ErrAlreadySettled)
	assert.Equal(t, models.Money(100), order.Products[0].Installments[0].PaidAmount)
}

func TestApplyPayment_UnknownTarget(t *testing.T) {
	order := testOrder()
	today := date(2024, time.January, 1)

	cases := []struct {
		name          string
		productID     uint
		installmentID uint
	}{
		{"чужой товар", 99, 100},
		{"чужая строка", 10, 999},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ApplyPayment(order, tc.productID, tc.installmentID, 10, today)
			assert.ErrorIs(t, err, ErrUnknownTarget)
		})
	}

	_, err := ApplyPayment(nil, 10, 100, 10, today)
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func TestApplyPayment_DoesNotTouchSiblings(t *testing.T) {
	order := testOrder()

	_, err := ApplyPayment(order, 10, 100, 100, date(2024, time.January, 1))
	require.NoError(t, err)

	other := order.Products[0].Installments[1]
	assert.Equal(t, models.Money(0), other.PaidAmount)
	assert.Nil(t, other.CompletedDate)
}
