package ledger

import "special-sheets-crm/models"

// PortfolioMetrics — сводные показатели панели. Проекция, а не состояние:
// пересчитывается по требованию и нигде отдельно не хранится.
// Баланс — единственная величина со знаком.
type PortfolioMetrics struct {
	Investment models.Money `json:"investment"`
	Expenses   models.Money `json:"expenses"`
	Payments   models.Money `json:"payments"`
	Profit     models.Money `json:"profit"`
	Balance    int64        `json:"balance"`
}

// ComputeMetrics сворачивает все заказы и ручные входы (инвестиции и
// прибыль) в показатели портфеля:
//
//	затраты = Σ(стоимость − предоплата) по всем товарам
//	оплаты  = Σ оплаченного по всем строкам графиков
//	баланс  = инвестиции − затраты + оплаты − прибыль
//
// Линейно по общему числу строк; пустой набор заказов даёт нулевые затраты
// и оплаты. Дешёвый полный пересчёт вместо инкрементального состояния —
// функцию безопасно звать после каждой мутации.
func ComputeMetrics(orders []models.Order, investment, profit models.Money) PortfolioMetrics {
	var expenses, payments models.Money
	for _, order := range orders {
		for _, p := range order.Products {
			expenses = expenses.Add(p.FullAmount - p.PrePaidAmount)
			for _, inst := range p.Installments {
				payments = payments.Add(inst.PaidAmount)
			}
		}
	}

	balance := investment.Int64() - expenses.Int64() + payments.Int64() - profit.Int64()

	return PortfolioMetrics{
		Investment: investment,
		Expenses:   expenses,
		Payments:   payments,
		Profit:     profit,
		Balance:    balance,
	}
}
