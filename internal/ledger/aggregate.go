package ledger

import "special-sheets-crm/models"

// Суммарные показатели заказа. Все три функции — чистые свёртки по
// загруженному заказу; обращений к хранилищу нет.

// OrderTotalAmount — общая стоимость всех товаров заказа.
func OrderTotalAmount(order models.Order) models.Money {
	var total models.Money
	for _, p := range order.Products {
		total = total.Add(p.FullAmount)
	}
	return total
}

// OrderTotalPrepaid — сумма предоплат по товарам заказа.
func OrderTotalPrepaid(order models.Order) models.Money {
	var total models.Money
	for _, p := range order.Products {
		total = total.Add(p.PrePaidAmount)
	}
	return total
}

// OrderTotalPaid — всё, что фактически оплачено по строкам графиков заказа.
func OrderTotalPaid(order models.Order) models.Money {
	var total models.Money
	for _, p := range order.Products {
		for _, inst := range p.Installments {
			total = total.Add(inst.PaidAmount)
		}
	}
	return total
}

// Подписи статусов, которые видит пользователь. Таблица статическая:
// финансовая завершённость заказа на статус не влияет, переходы делаются
// только явными запросами.
var displayStatuses = map[models.OrderStatus]string{
	models.OrderStatusPending:   "Ожидание",
	models.OrderStatusProcess:   "Активный",
	models.OrderStatusFinished:  "Завершен",
	models.OrderStatusCancelled: "Отменен",
}

// DisplayStatus возвращает подпись статуса; неизвестные значения
// показываются как ожидание.
func DisplayStatus(status models.OrderStatus) string {
	if label, ok := displayStatuses[status]; ok {
		return label
	}
	return displayStatuses[models.OrderStatusPending]
}

// CanDeleteProduct запрещает удаление товара, по графику которого уже шли
// оплаты: строки леджера с деньгами не выбрасываются.
func CanDeleteProduct(p models.Product) bool {
	for _, inst := range p.Installments {
		if inst.PaidAmount > 0 {
			return false
		}
	}
	return true
}

// CanDeleteOrder — то же правило целиком для заказа.
func CanDeleteOrder(order models.Order) bool {
	for _, p := range order.Products {
		if !CanDeleteProduct(p) {
			return false
		}
	}
	return true
}
