package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/reports"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct{ builder *reports.Builder }

func NewReportHandler(builder *reports.Builder) *ReportHandler {
	return &ReportHandler{builder: builder}
}

// StockReport streams the stock workbook as an attachment.
func (h *ReportHandler) StockReport(c echo.Context) error {
	data, err := h.builder.StockWorkbook(c.Request().Context())
	if err != nil {
		return respondDomainErr(c, err)
	}
	name := fmt.Sprintf("stock_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Blob(http.StatusOK, xlsxMIME, data)
}
