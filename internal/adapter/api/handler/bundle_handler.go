package handler

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/usecase"
	"starlinkwifi/pkg/response"
)

type BundleHandler struct {
	bundleUseCase *usecase.BundleUseCase
}

func NewBundleHandler(bundleUseCase *usecase.BundleUseCase) *BundleHandler {
	return &BundleHandler{
		bundleUseCase: bundleUseCase,
	}
}

type upsertBundleRequest struct {
	Name     string   `json:"name" validate:"required"`
	Price    float64  `json:"price" validate:"required,gt=0"`
	Features []string `json:"features"`
	Visible  *bool    `json:"visible"`
}

// ListBundles is the public price list: visible bundles only, cheapest first.
func (h *BundleHandler) ListBundles(c echo.Context) error {
	bundles, err := h.bundleUseCase.ListBundles(c.Request().Context(), false)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bundles)
}

func (h *BundleHandler) ListAllBundles(c echo.Context) error {
	bundles, err := h.bundleUseCase.ListBundles(c.Request().Context(), true)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bundles)
}

func (h *BundleHandler) UpsertBundle(c echo.Context) error {
	var req upsertBundleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	bundle, err := h.bundleUseCase.UpsertBundle(c.Request().Context(), c.Param("slug"), usecase.UpsertBundleInput{
		Name:     req.Name,
		Price:    req.Price,
		Features: req.Features,
		Visible:  visible,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bundle)
}

func (h *BundleHandler) ToggleVisibility(c echo.Context) error {
	bundle, err := h.bundleUseCase.ToggleVisibility(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bundle)
}

func (h *BundleHandler) DeleteBundle(c echo.Context) error {
	if err := h.bundleUseCase.DeleteBundle(c.Request().Context(), c.Param("slug")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Bundle deleted successfully",
	})
}
