package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/usecase/checkout"
)

type WithdrawalHandler struct{ uc *checkout.Usecase }

func NewWithdrawalHandler(uc *checkout.Usecase) *WithdrawalHandler {
	return &WithdrawalHandler{uc: uc}
}

type checkoutReq struct {
	HolderID   uint64  `json:"holder_id"   validate:"required"`
	MaterialID uint64  `json:"material_id" validate:"required"`
	Notes      *string `json:"notes"`
}

// Checkout hands an equipment item to a holder. Exactly one holder can have
// an item out at a time; a second attempt gets 409.
func (h *WithdrawalHandler) Checkout(c echo.Context) error {
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Checkout(c.Request().Context(), checkout.CheckoutInput(req))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type consumeReq struct {
	HolderID   uint64  `json:"holder_id"   validate:"required"`
	MaterialID uint64  `json:"material_id" validate:"required"`
	Amount     int64   `json:"amount"      validate:"required,gte=1"`
	Notes      *string `json:"notes"`
}

// Consume issues consumable stock to a holder, deducting lots FEFO.
func (h *WithdrawalHandler) Consume(c echo.Context) error {
	var req consumeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	result, err := h.uc.Consume(c.Request().Context(), checkout.ConsumeInput(req))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

type returnReq struct {
	Efficient *bool `json:"efficient" validate:"required"`
}

// Return closes a checkout and records whether the item came back working.
func (h *WithdrawalHandler) Return(c echo.Context) error {
	id, err := paramID(c, "withdrawal_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid withdrawal_id"})
	}
	var req returnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Return(c.Request().Context(), id, *req.Efficient)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WithdrawalHandler) ListByHolder(c echo.Context) error {
	id, err := paramID(c, "holder_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid holder_id"})
	}
	dtos, err := h.uc.ListByHolder(c.Request().Context(), id)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *WithdrawalHandler) ListByMaterial(c echo.Context) error {
	id, err := paramID(c, "material_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid material_id"})
	}
	dtos, err := h.uc.ListByMaterial(c.Request().Context(), id)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *WithdrawalHandler) ListActive(c echo.Context) error {
	active, err := h.uc.ListActiveCheckouts(c.Request().Context())
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, active)
}
