package ledger

import (
	"time"

	"special-sheets-crm/models"
)

// DefaultInstallmentCount — длина графика по умолчанию,
// совпадает с сеткой из 12 ячеек на главной таблице.
const DefaultInstallmentCount = 12

// GenerateSchedule строит график платежей товара: остаток
// FullAmount − PrePaidAmount делится на n строк. Первые n−1 строк получают
// floor(остаток/n), последняя забирает остаток деления, поэтому сумма строк
// всегда в точности равна остатку. Даты распределяются тем же способом:
// первые даты идут с шагом floor(дней/(n−1)) от начала периода, последняя
// принудительно равна дате окончания.
//
// Если по существующему графику уже была хоть одна оплата, перестроение
// запрещено (ErrScheduleAlreadyActive) — после движения денег график
// неизменяем. Функция ничего не мутирует: новый набор строк возвращается
// вызывающему, замена старого — забота хранилища.
func GenerateSchedule(p *models.Product, n int) ([]models.Installment, error) {
	if n < 1 {
		return nil, ErrInvalidScheduleInput
	}
	if p.PrePaidAmount.GreaterThan(p.FullAmount) {
		return nil, ErrInvalidScheduleInput
	}

	start := dateOnly(p.PeriodStartDate)
	end := dateOnly(p.PeriodEndDate)
	if end.Before(start) {
		return nil, ErrInvalidScheduleInput
	}

	for _, inst := range p.Installments {
		if inst.PaidAmount > 0 {
			return nil, ErrScheduleAlreadyActive
		}
	}

	balance, err := p.FullAmount.Sub(p.PrePaidAmount)
	if err != nil {
		return nil, ErrInvalidScheduleInput
	}

	base := balance / models.Money(n)

	step := 0
	if n > 1 {
		totalDays := int(end.Sub(start).Hours() / 24)
		step = totalDays / (n - 1)
	}

	graphics := make([]models.Installment, 0, n)
	for i := 0; i < n; i++ {
		amount := base
		due := start.AddDate(0, 0, i*step)
		if i == n-1 {
			amount = balance - base*models.Money(n-1)
			due = end
		}
		graphics = append(graphics, models.Installment{
			ProductID:       p.ID,
			Seq:             i + 1,
			Amount:          amount,
			PaidAmount:      0,
			ScheduledPayDay: due,
		})
	}
	return graphics, nil
}

// dateOnly обрезает время до календарного дня в UTC.
// Сравнения дат в леджере всегда подневные.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
