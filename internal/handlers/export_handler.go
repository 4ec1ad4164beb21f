// special-sheets-crm/internal/handlers/export_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"special-sheets-crm/config"
	"special-sheets-crm/internal/ledger"
	"special-sheets-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportOrdersHandler выгружает портфель заказов в Excel: по строке на
// товар, с итогами оплат и состоянием графика.
func ExportOrdersHandler(c *gin.Context) {
	var orders []models.Order
	err := config.DB.
		Preload("Client").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.id ASC")
		}).
		Preload("Products.Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installments.seq ASC")
		}).
		Order("assigned_index ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить данные для экспорта"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Заказы"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Заказ", "Статус", "Клиент", "Телефон", "Товар", "Полная сумма", "Предоплата", "Оплачено", "Остаток", "Начало периода", "Конец периода", "Платежей в графике"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	row := 2
	for _, order := range orders {
		clientName, clientPhone := "", ""
		if order.Client != nil {
			clientName = fmt.Sprintf("%s %s", order.Client.Surname, order.Client.Name)
			clientPhone = order.Client.PhoneNumber
		}
		for _, p := range order.Products {
			var paid models.Money
			for _, inst := range p.Installments {
				paid = paid.Add(inst.PaidAmount)
			}
			remaining := p.FullAmount.Int64() - p.PrePaidAmount.Int64() - paid.Int64()

			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), order.GeneratedID)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), ledger.DisplayStatus(order.Status))
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), clientName)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), clientPhone)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.Name)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), p.FullAmount.Int64())
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), p.PrePaidAmount.Int64())
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), paid.Int64())
			f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), remaining)
			f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), p.PeriodStartDate.Format("02.01.2006"))
			f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), p.PeriodEndDate.Format("02.01.2006"))
			f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), len(p.Installments))
			row++
		}
	}

	fileName := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сформировать файл"})
	}
}
