package ledger

import (
	"time"

	"special-sheets-crm/models"
)

// Status — отображаемое состояние строки графика.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDueToday  Status = "due-today"
	StatusOverdue   Status = "overdue"
	StatusFullyPaid Status = "full-paid"
)

// Classify сопоставляет строке графика её состояние на день today.
// Порядок проверок значим: полностью оплаченная строка никогда не
// считается просроченной, даже если дата давно прошла — оплаченную с
// опозданием строку нельзя подсвечивать красным. Оплаченность проверяется
// по суммам, а не по CompletedDate: так классификатор устойчив к записям,
// где дата закрытия не проставлена.
func Classify(inst models.Installment, today time.Time) Status {
	if inst.PaidAmount >= inst.Amount {
		return StatusFullyPaid
	}

	due := dateOnly(inst.ScheduledPayDay)
	day := dateOnly(today)
	switch {
	case due.Equal(day):
		return StatusDueToday
	case due.Before(day):
		return StatusOverdue
	default:
		return StatusPending
	}
}
