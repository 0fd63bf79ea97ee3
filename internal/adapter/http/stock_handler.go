package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/usecase/stock"
)

type StockHandler struct {
	uc *stock.Usecase
	// defaults for the expiring-lots view
	expiryWindowDays int
	expiringLimit    int
}

func NewStockHandler(uc *stock.Usecase, expiryWindowDays, expiringLimit int) *StockHandler {
	return &StockHandler{uc: uc, expiryWindowDays: expiryWindowDays, expiringLimit: expiringLimit}
}

type addBatchReq struct {
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	Expiration string  `json:"expiration" validate:"required,datetime=2006-01-02"`
	Amount     int64   `json:"amount"     validate:"required,gte=1"`
	Location   *string `json:"location"`
}

func (h *StockHandler) AddBatch(c echo.Context) error {
	materialID, err := paramID(c, "material_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid material_id"})
	}
	var req addBatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	exp, _ := time.Parse("2006-01-02", req.Expiration)

	dto, err := h.uc.AddBatch(c.Request().Context(), stock.AddBatchInput{
		MaterialID: materialID,
		Expiration: exp,
		Amount:     req.Amount,
		Location:   req.Location,
	})
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *StockHandler) ListBatches(c echo.Context) error {
	materialID, err := paramID(c, "material_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid material_id"})
	}
	dtos, err := h.uc.ListBatches(c.Request().Context(), materialID)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *StockHandler) TotalStock(c echo.Context) error {
	materialID, err := paramID(c, "material_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid material_id"})
	}
	total, err := h.uc.TotalStock(c.Request().Context(), materialID)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"material_id": materialID, "total_stock": total})
}

func (h *StockHandler) TotalStocks(c echo.Context) error {
	totals, err := h.uc.TotalStocks(c.Request().Context())
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, totals)
}

type consumeStockReq struct {
	Amount int64 `json:"amount" validate:"required,gte=1"`
}

// ConsumeStock deducts stock FEFO without a holder, for corrections and
// discards. Issue-to-holder consumption goes through the withdrawal routes.
func (h *StockHandler) ConsumeStock(c echo.Context) error {
	materialID, err := paramID(c, "material_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid material_id"})
	}
	var req consumeStockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	plan, err := h.uc.Consume(c.Request().Context(), materialID, req.Amount)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"deductions": plan})
}

// Expiring lists lots expiring within ?days= (default from config), capped at
// ?limit=.
func (h *StockHandler) Expiring(c echo.Context) error {
	days := h.expiryWindowDays
	if q := c.QueryParam("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid days"})
		}
		days = n
	}
	limit := h.expiringLimit
	if q := c.QueryParam("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = n
	}
	dtos, err := h.uc.Expiring(c.Request().Context(), days, limit)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *StockHandler) LowStock(c echo.Context) error {
	dtos, err := h.uc.LowStock(c.Request().Context())
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
