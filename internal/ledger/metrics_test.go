package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"special-sheets-crm/models"
)

func TestComputeMetrics_EmptyPortfolio(t *testing.T) {
	m := ComputeMetrics(nil, 5000, 300)

	assert.Equal(t, models.Money(0), m.Expenses)
	assert.Equal(t, models.Money(0), m.Payments)
	assert.Equal(t, int64(4700), m.Balance)
}

func TestComputeMetrics_BalanceFormula(t *testing.T) {
	orders := []models.Order{
		{
			Products: []models.Product{
				{
					FullAmount:    1200,
					PrePaidAmount: 200,
					Installments: []models.Installment{
						{Amount: 500, PaidAmount: 500},
						{Amount: 500, PaidAmount: 150},
					},
				},
			},
		},
		{
			Products: []models.Product{
				{FullAmount: 800, PrePaidAmount: 0},
			},
		},
	}

	m := ComputeMetrics(orders, 10000, 400)

	// затраты = (1200−200) + (800−0) = 1800; оплаты = 650.
	assert.Equal(t, models.Money(1800), m.Expenses)
	assert.Equal(t, models.Money(650), m.Payments)
	assert.Equal(t, models.Money(10000), m.Investment)
	assert.Equal(t, models.Money(400), m.Profit)
	assert.Equal(t, int64(10000-1800+650-400), m.Balance)
}

func TestComputeMetrics_BalanceCanGoNegative(t *testing.T) {
	orders := []models.Order{
		{Products: []models.Product{{FullAmount: 9000, PrePaidAmount: 0}}},
	}

	m := ComputeMetrics(orders, 1000, 0)
	assert.Equal(t, int64(-8000), m.Balance)
}
