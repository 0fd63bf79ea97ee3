package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domainMaterial "stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/usecase/material"
)

type MaterialHandler struct{ uc *material.Usecase }

func NewMaterialHandler(uc *material.Usecase) *MaterialHandler { return &MaterialHandler{uc: uc} }

type initialBatchReq struct {
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	Expiration string  `json:"expiration" validate:"required,datetime=2006-01-02"`
	Amount     int64   `json:"amount"     validate:"required,gte=1"`
	Location   *string `json:"location"`
}

type createMaterialReq struct {
	Type         string           `json:"type"          validate:"required,materialtype"`
	Denomination string           `json:"denomination"  validate:"required"`
	NDC          *string          `json:"ndc"`
	PartNumber   *string          `json:"part_number"`
	SerialNumber *string          `json:"serial_number"`
	Code         *string          `json:"code"`
	ImagePath    *string          `json:"image_path"`
	MinStock     *int64           `json:"min_stock"     validate:"omitempty,gte=0"`
	InitialBatch *initialBatchReq `json:"initial_batch"`
}

func (h *MaterialHandler) CreateMaterial(c echo.Context) error {
	var req createMaterialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := material.CreateMaterialInput{
		Type:         domainMaterial.Type(req.Type),
		Denomination: req.Denomination,
		NDC:          req.NDC,
		PartNumber:   req.PartNumber,
		SerialNumber: req.SerialNumber,
		Code:         req.Code,
		ImagePath:    req.ImagePath,
		MinStock:     req.MinStock,
	}
	if req.InitialBatch != nil {
		exp, _ := time.Parse("2006-01-02", req.InitialBatch.Expiration)
		in.InitialBatch = &material.InitialBatchInput{
			Expiration: exp,
			Amount:     req.InitialBatch.Amount,
			Location:   req.InitialBatch.Location,
		}
	}

	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MaterialHandler) GetMaterial(c echo.Context) error {
	id, err := paramID(c, "material_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid material_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListMaterials lists the catalog, optionally filtered by ?type=.
func (h *MaterialHandler) ListMaterials(c echo.Context) error {
	var t *domainMaterial.Type
	if q := c.QueryParam("type"); q != "" {
		mt := domainMaterial.Type(q)
		t = &mt
	}
	dtos, err := h.uc.List(c.Request().Context(), t)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type updateMaterialReq struct {
	Denomination *string `json:"denomination"`
	NDC          *string `json:"ndc"`
	PartNumber   *string `json:"part_number"`
	SerialNumber *string `json:"serial_number"`
	Code         *string `json:"code"`
	ImagePath    *string `json:"image_path"`
	MinStock     *int64  `json:"min_stock" validate:"omitempty,gte=0"`
	Location     *string `json:"location"`
}

func (h *MaterialHandler) UpdateMaterial(c echo.Context) error {
	id, err := paramID(c, "material_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid material_id"})
	}
	var req updateMaterialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), id, material.UpdateMaterialInput(req))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MaterialHandler) DeleteMaterial(c echo.Context) error {
	id, err := paramID(c, "material_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid material_id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondDomainErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MaterialDependencies reports how many batch and withdrawal rows a delete
// would cascade over.
func (h *MaterialHandler) MaterialDependencies(c echo.Context) error {
	id, err := paramID(c, "material_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid material_id"})
	}
	dto, err := h.uc.DependencyCount(c.Request().Context(), id)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
