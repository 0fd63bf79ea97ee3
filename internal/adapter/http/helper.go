package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/domain/batch"
	"stockroom-backend/internal/domain/holder"
	"stockroom-backend/internal/domain/ledger"
	"stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/withdrawal"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func paramID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// respondDomainErr maps ledger errors onto HTTP statuses. Insufficient stock
// gets its own 422 payload so clients can show available vs requested.
func respondDomainErr(c echo.Context, err error) error {
	var ins *batch.InsufficientStockError
	if errors.As(err, &ins) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":     ins.Error(),
			"available": ins.Available,
			"requested": ins.Requested,
		})
	}

	switch {
	case errors.Is(err, holder.ErrNotFound),
		errors.Is(err, material.ErrNotFound),
		errors.Is(err, batch.ErrNotFound),
		errors.Is(err, withdrawal.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, ledger.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, withdrawal.ErrAlreadyCheckedOut),
		errors.Is(err, withdrawal.ErrAlreadyReturned),
		errors.Is(err, holder.ErrShortCodeTaken),
		errors.Is(err, ledger.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
