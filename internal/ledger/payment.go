package ledger

import (
	"time"

	"special-sheets-crm/models"
)

// ApplyPayment применяет оплату к строке графика. Семантика — замена, а не
// прибавление: повторная отправка той же суммы ничего не меняет, а
// исправление заново указывает общий оплаченный итог строки.
//
// Сумма не может превышать сумму строки (контроль на уровне строки, не
// остатка заказа). Полностью оплаченная строка через этот путь неизменяема.
// Дата закрытия ставится переданным "сегодня", если строка закрыта
// полностью, и снимается иначе. Никаких каскадных пересчётов функция не
// делает: статус заказа и метрики вызывающий перечитывает сам.
func ApplyPayment(order *models.Order, productID, installmentID uint, amount models.Money, today time.Time) (*models.Installment, error) {
	inst := findInstallment(order, productID, installmentID)
	if inst == nil {
		return nil, ErrUnknownTarget
	}
	if inst.CompletedDate != nil {
		return nil, ErrAlreadySettled
	}
	if amount.GreaterThan(inst.Amount) {
		return nil, ErrOverpaymentRejected
	}

	inst.PaidAmount = amount
	if inst.PaidAmount >= inst.Amount {
		completed := dateOnly(today)
		inst.CompletedDate = &completed
		inst.Status = models.InstallmentStatusFullPaid
	} else {
		inst.CompletedDate = nil
		inst.Status = ""
	}
	return inst, nil
}

func findInstallment(order *models.Order, productID, installmentID uint) *models.Installment {
	if order == nil {
		return nil
	}
	for pi := range order.Products {
		p := &order.Products[pi]
		if p.ID != productID {
			continue
		}
		for ii := range p.Installments {
			if p.Installments[ii].ID == installmentID {
				return &p.Installments[ii]
			}
		}
	}
	return nil
}
