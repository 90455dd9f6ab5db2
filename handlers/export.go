package handlers

import (
	"fmt"
	"net/http"
	"time"

	"washbay/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExportHandler streams the booking collection as an Excel workbook.
type ExportHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewExportHandler creates an ExportHandler with the given service.
func NewExportHandler(svc booking.BookingService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{Service: svc, Logger: logger}
}

var exportColumns = []string{
	"Booking ID", "Customer", "Phone", "Email", "Car", "Year", "Service",
	"Add-ons", "Date", "Time Slot", "Duration (min)", "Price", "Status",
	"Location", "Created At",
}

// ExportBookingsHandler handles GET /api/bookings/export.
func (h *ExportHandler) ExportBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetAllBookings()
	if err != nil {
		h.Logger.Error("Failed to export bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		h.Logger.Error("Failed to create export sheet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}

	for row, b := range bookings {
		values := []interface{}{
			b.BookingID,
			b.CustomerName,
			b.CustomerPhone,
			b.CustomerEmail,
			b.CarLabel(),
			b.CarDetails.Year,
			b.ServiceType,
			joinAddOns(b.AddOns),
			b.Date,
			b.TimeSlot,
			optionalInt(b.Duration),
			optionalFloat(b.Price),
			b.Status,
			b.Location,
			b.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "O", 18)

	filename := fmt.Sprintf("bookings-%s-%s.xlsx",
		time.Now().Format("20060102"), uuid.New().String()[:8])
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		h.Logger.Error("Failed to write export", zap.Error(err))
	}
}

func joinAddOns(addOns []string) string {
	out := ""
	for i, a := range addOns {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out
}

func optionalInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func optionalFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
