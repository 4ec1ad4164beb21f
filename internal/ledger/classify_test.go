package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"special-sheets-crm/models"
)

func TestClassify(t *testing.T) {
	today := date(2024, time.January, 15)

	cases := []struct {
		name string
		inst models.Installment
		want Status
	}{
		{
			"будущая строка — в ожидании",
			models.Installment{Amount: 100, ScheduledPayDay: date(2024, time.February, 1)},
			StatusPending,
		},
		{
			"срок сегодня",
			models.Installment{Amount: 100, ScheduledPayDay: date(2024, time.January, 15)},
			StatusDueToday,
		},
		{
			"срок прошёл, не оплачена — просрочена",
			models.Installment{Amount: 100, ScheduledPayDay: date(2023, time.December, 1)},
			StatusOverdue,
		},
		{
			"оплачена полностью",
			models.Installment{Amount: 100, PaidAmount: 100, ScheduledPayDay: date(2024, time.February, 1)},
			StatusFullyPaid,
		},
		{
			"оплачена с опозданием — не просрочена",
			models.Installment{Amount: 100, PaidAmount: 100, ScheduledPayDay: date(2023, time.December, 1)},
			StatusFullyPaid,
		},
		{
			"оплачена в срок сегодня — full-paid важнее due-today",
			models.Installment{Amount: 100, PaidAmount: 100, ScheduledPayDay: date(2024, time.January, 15)},
			StatusFullyPaid,
		},
		{
			"частичная оплата статус не закрывает",
			models.Installment{Amount: 100, PaidAmount: 60, ScheduledPayDay: date(2023, time.December, 1)},
			StatusOverdue,
		},
		{
			"оплаченность считается по суммам, без даты закрытия",
			models.Installment{Amount: 100, PaidAmount: 100, CompletedDate: nil, ScheduledPayDay: date(2023, time.December, 1)},
			StatusFullyPaid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.inst, today))
		})
	}
}

func TestClassify_CalendarDayNotClock(t *testing.T) {
	// Сравнение подневное: разное время суток одного дня — всё равно "сегодня".
	inst := models.Installment{
		Amount:          100,
		ScheduledPayDay: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
	lateEvening := time.Date(2024, time.January, 15, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, StatusDueToday, Classify(inst, lateEvening))
}
