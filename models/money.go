package models

import "errors"

// Money — денежная сумма в целых единицах валюты.
// Хранится как int64 (bigint в БД); float не используется нигде,
// где суммы сравниваются или складываются.
type Money int64

// ErrNegativeMoney возвращается, когда результат вычитания ушёл бы в минус.
var ErrNegativeMoney = errors.New("money: result would be negative")

// Add возвращает сумму двух значений.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub возвращает разность. Отрицательный результат — ошибка, а не ноль:
// суммы в леджере никогда не бывают отрицательными.
func (m Money) Sub(other Money) (Money, error) {
	if other > m {
		return 0, ErrNegativeMoney
	}
	return m - other, nil
}

// GreaterThan сравнивает суммы.
func (m Money) GreaterThan(other Money) bool {
	return m > other
}

// Int64 возвращает значение как int64 (для подсчёта баланса,
// который единственный может быть отрицательным).
func (m Money) Int64() int64 {
	return int64(m)
}
