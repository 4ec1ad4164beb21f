// Package ledger — движок графиков платежей и оплат.
//
// Пакет чистый: он не ходит в БД и не читает системные часы — заказ и
// "сегодня" всегда передаёт вызывающий. Любой отказ — типизированная
// ошибка, на которую обработчик отвечает нужным HTTP-статусом; паник и
// частично применённых операций здесь нет.
package ledger

import "errors"

var (
	// ErrInvalidScheduleInput — некорректные суммы или даты при построении графика.
	ErrInvalidScheduleInput = errors.New("ledger: invalid schedule input")

	// ErrScheduleAlreadyActive — попытка перестроить график, по которому уже шли оплаты.
	ErrScheduleAlreadyActive = errors.New("ledger: schedule already has payments")

	// ErrUnknownTarget — тройка заказ/товар/платёж не указывает на существующую строку.
	ErrUnknownTarget = errors.New("ledger: unknown order, product or installment")

	// ErrOverpaymentRejected — оплата больше суммы строки графика.
	ErrOverpaymentRejected = errors.New("ledger: payment exceeds installment amount")

	// ErrAlreadySettled — строка полностью оплачена и через этот путь неизменяема.
	ErrAlreadySettled = errors.New("ledger: installment already settled")

	// ErrDeletionBlocked — удаление товара или заказа при наличии оплат.
	ErrDeletionBlocked = errors.New("ledger: payments exist, deletion blocked")
)
