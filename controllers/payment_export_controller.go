package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/payflow-dev/payflow/models"
	"github.com/payflow-dev/payflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// Export handles GET /payments/export and streams all payments as a
// spreadsheet with a summary block.
func (pc *PaymentController) Export(c *gin.Context) {
	payments, err := pc.payments.GetAll()
	if err != nil {
		utils.LogError("Failed to load payments for export: %v", err)
		utils.InternalServerError(c, err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet")
		return
	}

	headers := []string{"ID", "Transaction ID", "User ID", "Amount", "Currency", "Method", "Status", "Remarks", "Created At"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	var succeeded, failed, refunded int
	for _, p := range payments {
		row := sheet.AddRow()
		row.AddCell().SetString(strconv.Itoa(int(p.ID)))
		row.AddCell().SetString(p.TransactionID)
		row.AddCell().SetString(strconv.Itoa(int(p.UserID)))
		row.AddCell().SetFloat(p.Amount)
		row.AddCell().SetString(p.Currency)
		row.AddCell().SetString(p.PaymentMethod)
		row.AddCell().SetString(string(p.Status))
		row.AddCell().SetString(p.Remarks)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))

		switch p.Status {
		case models.PaymentStatusSuccess:
			succeeded++
		case models.PaymentStatusFailed:
			failed++
		case models.PaymentStatusRefunded:
			refunded++
		}
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Payments", strconv.Itoa(len(payments))},
		{"Succeeded", strconv.Itoa(succeeded)},
		{"Failed", strconv.Itoa(failed)},
		{"Refunded", strconv.Itoa(refunded)},
	}
	for _, rowData := range summaryData {
		row := sheet.AddRow()
		for _, v := range rowData {
			row.AddCell().SetString(v)
		}
	}

	utils.LogInfo("Exporting %d payment(s) to Excel", len(payments))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments_%s.xlsx", time.Now().Format("2006-01-02")))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file")
		return
	}
}
