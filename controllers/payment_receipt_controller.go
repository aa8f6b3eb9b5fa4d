package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/payflow-dev/payflow/services"
	"github.com/payflow-dev/payflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// Receipt handles GET /payments/:id/receipt and streams a PDF receipt
// for the payment.
func (pc *PaymentController) Receipt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := pc.payments.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			utils.NotFound(c, "Payment not found with id: "+c.Param("id"))
			return
		}
		utils.LogError("Failed to load payment %d for receipt: %v", id, err)
		utils.InternalServerError(c, err.Error())
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Transaction ID: "+payment.TransactionID)
	pdf.Ln(8)
	pdf.Cell(60, 8, "Date: "+payment.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "User ID: "+strconv.Itoa(int(payment.UserID)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(50, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Currency", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 8, "Method", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Status", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", payment.Amount), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, payment.Currency, "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 8, payment.PaymentMethod, "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, string(payment.Status), "1", 0, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, payment.Remarks)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate receipt PDF for payment %d: %v", id, err)
		utils.InternalServerError(c, "Failed to generate receipt")
		return
	}
	utils.LogInfo("Receipt generated for payment ID: %d", id)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", payment.TransactionID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
