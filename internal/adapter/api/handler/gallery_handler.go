package handler

import (
	"encoding/base64"

	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/usecase"
	"starlinkwifi/pkg/errors"
	"starlinkwifi/pkg/response"
	"starlinkwifi/pkg/utils"
)

type GalleryHandler struct {
	galleryUseCase *usecase.GalleryUseCase
}

func NewGalleryHandler(galleryUseCase *usecase.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{
		galleryUseCase: galleryUseCase,
	}
}

type uploadImageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Filename    string `json:"filename" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Data        string `json:"data" validate:"required"`
}

// ListImages is the public gallery view: visible images only.
func (h *GalleryHandler) ListImages(c echo.Context) error {
	params := utils.GetListParams(c, 50)

	images, err := h.galleryUseCase.ListImages(c.Request().Context(), c.QueryParam("category"), false, params.Limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, images)
}

// ListAllImages is the admin view including hidden images.
func (h *GalleryHandler) ListAllImages(c echo.Context) error {
	params := utils.GetListParams(c, 100)

	images, err := h.galleryUseCase.ListImages(c.Request().Context(), c.QueryParam("category"), true, params.Limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, images)
}

func (h *GalleryHandler) UploadImage(c echo.Context) error {
	var req uploadImageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return response.Error(c, errors.BadRequest("data must be base64 encoded", err))
	}

	image, err := h.galleryUseCase.UploadImage(c.Request().Context(), usecase.UploadImageInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Filename:    req.Filename,
		Type:        req.Type,
		Data:        data,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, image)
}

func (h *GalleryHandler) ToggleVisibility(c echo.Context) error {
	image, err := h.galleryUseCase.ToggleVisibility(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, image)
}

func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	if err := h.galleryUseCase.DeleteImage(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Image deleted successfully",
	})
}
