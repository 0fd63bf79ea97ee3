package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/usecase/dashboard"
)

type DashboardHandler struct {
	uc               *dashboard.Usecase
	expiryWindowDays int
	expiringLimit    int
}

func NewDashboardHandler(uc *dashboard.Usecase, expiryWindowDays, expiringLimit int) *DashboardHandler {
	return &DashboardHandler{uc: uc, expiryWindowDays: expiryWindowDays, expiringLimit: expiringLimit}
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	dto, err := h.uc.Overview(c.Request().Context(), h.expiryWindowDays, h.expiringLimit)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DashboardHandler) DamagedEquipment(c echo.Context) error {
	dtos, err := h.uc.DamagedEquipment(c.Request().Context())
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *DashboardHandler) Availability(c echo.Context) error {
	dtos, err := h.uc.Availability(c.Request().Context())
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
