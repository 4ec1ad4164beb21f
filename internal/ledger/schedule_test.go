package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"special-sheets-crm/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testProduct(full, prepaid models.Money, start, end time.Time) *models.Product {
	return &models.Product{
		ID:              7,
		Name:            "Холодильник",
		FullAmount:      full,
		PrePaidAmount:   prepaid,
		PeriodStartDate: start,
		PeriodEndDate:   end,
	}
}

func TestGenerateSchedule_EvenSplit(t *testing.T) {
	p := testProduct(1200, 0, date(2024, time.January, 1), date(2024, time.December, 1))

	graphics, err := GenerateSchedule(p, 12)
	require.NoError(t, err)
	require.Len(t, graphics, 12)

	for i, inst := range graphics {
		assert.Equal(t, i+1, inst.Seq)
		assert.Equal(t, models.Money(100), inst.Amount)
		assert.Equal(t, models.Money(0), inst.PaidAmount)
		assert.Nil(t, inst.CompletedDate)
		assert.Equal(t, uint(7), inst.ProductID)
	}

	assert.Equal(t, date(2024, time.January, 1), graphics[0].ScheduledPayDay)
	assert.Equal(t, date(2024, time.December, 1), graphics[11].ScheduledPayDay)

	// Промежуточные даты идут ровным шагом floor(335/11) = 30 дней.
	for i := 1; i < 11; i++ {
		want := graphics[0].ScheduledPayDay.AddDate(0, 0, i*30)
		assert.Equal(t, want, graphics[i].ScheduledPayDay, "seq %d", i+1)
	}
}

func TestGenerateSchedule_RemainderGoesToLast(t *testing.T) {
	// 1000 на 12 строк: 11 × 83 + 87, ни одной потерянной единицы.
	p := testProduct(1500, 500, date(2024, time.January, 1), date(2024, time.December, 1))

	graphics, err := GenerateSchedule(p, 12)
	require.NoError(t, err)

	var sum models.Money
	for i, inst := range graphics {
		sum = sum.Add(inst.Amount)
		if i < 11 {
			assert.Equal(t, models.Money(83), inst.Amount)
		}
	}
	assert.Equal(t, models.Money(87), graphics[11].Amount)
	assert.Equal(t, models.Money(1000), sum)
}

func TestGenerateSchedule_SumInvariantHolds(t *testing.T) {
	cases := []struct {
		name    string
		full    models.Money
		prepaid models.Money
		n       int
	}{
		{"делится нацело", 1200, 0, 12},
		{"остаток на последней", 1000, 3, 7},
		{"остаток меньше строк", 10, 0, 12},
		{"нулевой остаток", 500, 500, 12},
		{"одна строка", 999, 100, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := testProduct(tc.full, tc.prepaid, date(2024, time.March, 1), date(2025, time.March, 1))
			graphics, err := GenerateSchedule(p, tc.n)
			require.NoError(t, err)
			require.Len(t, graphics, tc.n)

			var sum models.Money
			for _, inst := range graphics {
				sum = sum.Add(inst.Amount)
			}
			assert.Equal(t, tc.full-tc.prepaid, sum)
			assert.Equal(t, date(2025, time.March, 1), graphics[tc.n-1].ScheduledPayDay)
		})
	}
}

func TestGenerateSchedule_SingleInstallmentDueAtEnd(t *testing.T) {
	p := testProduct(700, 200, date(2024, time.May, 10), date(2024, time.August, 10))

	graphics, err := GenerateSchedule(p, 1)
	require.NoError(t, err)
	require.Len(t, graphics, 1)
	assert.Equal(t, models.Money(500), graphics[0].Amount)
	assert.Equal(t, date(2024, time.August, 10), graphics[0].ScheduledPayDay)
}

func TestGenerateSchedule_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		p    *models.Product
		n    int
	}{
		{
			"предоплата больше стоимости",
			testProduct(100, 200, date(2024, time.January, 1), date(2024, time.June, 1)),
			12,
		},
		{
			"период задом наперёд",
			testProduct(1200, 0, date(2024, time.June, 1), date(2024, time.January, 1)),
			12,
		},
		{
			"нулевая длина графика",
			testProduct(1200, 0, date(2024, time.January, 1), date(2024, time.June, 1)),
			0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateSchedule(tc.p, tc.n)
			assert.ErrorIs(t, err, ErrInvalidScheduleInput)
		})
	}
}

func TestGenerateSchedule_RejectedAfterPayment(t *testing.T) {
	p := testProduct(1200, 0, date(2024, time.January, 1), date(2024, time.December, 1))

	graphics, err := GenerateSchedule(p, 12)
	require.NoError(t, err)

	// Пока оплат нет, перестроение разрешено.
	p.Installments = graphics
	regenerated, err := GenerateSchedule(p, 6)
	require.NoError(t, err)
	assert.Len(t, regenerated, 6)

	// После первой оплаты график неприкосновенен.
	p.Installments[0].PaidAmount = 50
	_, err = GenerateSchedule(p, 12)
	assert.ErrorIs(t, err, ErrScheduleAlreadyActive)

	// Существующие строки не тронуты.
	assert.Equal(t, models.Money(50), p.Installments[0].PaidAmount)
	assert.Len(t, p.Installments, 12)
}

func TestGenerateSchedule_SameDayPeriod(t *testing.T) {
	day := date(2024, time.July, 15)
	p := testProduct(1200, 0, day, day)

	graphics, err := GenerateSchedule(p, 12)
	require.NoError(t, err)
	for _, inst := range graphics {
		assert.Equal(t, day, inst.ScheduledPayDay)
	}
}
