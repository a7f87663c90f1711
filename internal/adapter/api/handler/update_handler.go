package handler

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/usecase"
	"starlinkwifi/pkg/response"
)

type UpdateHandler struct {
	updateUseCase *usecase.UpdateUseCase
}

func NewUpdateHandler(updateUseCase *usecase.UpdateUseCase) *UpdateHandler {
	return &UpdateHandler{
		updateUseCase: updateUseCase,
	}
}

type pushUpdateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content" validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneof=normal high urgent"`
}

func (h *UpdateHandler) PushUpdate(c echo.Context) error {
	var req pushUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	update, err := h.updateUseCase.PushUpdate(c.Request().Context(), usecase.PushUpdateInput{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, update)
}

// PollUpdates drains and returns pending site updates for a polling client.
func (h *UpdateHandler) PollUpdates(c echo.Context) error {
	updates, err := h.updateUseCase.Poll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, updates)
}
