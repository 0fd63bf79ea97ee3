package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/usecase/holder"
)

type HolderHandler struct{ uc *holder.Usecase }

func NewHolderHandler(uc *holder.Usecase) *HolderHandler { return &HolderHandler{uc: uc} }

type createHolderReq struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name"  validate:"required"`
	Title     *string `json:"title"`
	Workplace *string `json:"workplace"`
	Mobile    *string `json:"mobile"`
	Email     *string `json:"email"`
	Code      *string `json:"code"`
	Notes     *string `json:"notes"`
}

func (h *HolderHandler) CreateHolder(c echo.Context) error {
	var req createHolderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), holder.CreateHolderInput(req))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *HolderHandler) GetHolder(c echo.Context) error {
	id, err := paramID(c, "holder_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid holder_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *HolderHandler) ListHolders(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *HolderHandler) UpdateHolder(c echo.Context) error {
	id, err := paramID(c, "holder_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid holder_id"})
	}
	var req holder.UpdateHolderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *HolderHandler) DeleteHolder(c echo.Context) error {
	id, err := paramID(c, "holder_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid holder_id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondDomainErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// HolderDependencies reports how many withdrawal rows a delete would cascade
// over, so clients can confirm before deleting.
func (h *HolderHandler) HolderDependencies(c echo.Context) error {
	id, err := paramID(c, "holder_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid holder_id"})
	}
	dto, err := h.uc.DependencyCount(c.Request().Context(), id)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
