package handler

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/usecase"
	"starlinkwifi/pkg/response"
)

type SubscriberHandler struct {
	subscriberUseCase *usecase.SubscriberUseCase
}

func NewSubscriberHandler(subscriberUseCase *usecase.SubscriberUseCase) *SubscriberHandler {
	return &SubscriberHandler{
		subscriberUseCase: subscriberUseCase,
	}
}

type subscribeRequest struct {
	Token string `json:"token" validate:"required"`
}

func (h *SubscriberHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	subscriber, err := h.subscriberUseCase.Subscribe(c.Request().Context(), req.Token, c.Request().UserAgent())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, subscriber)
}

func (h *SubscriberHandler) Unsubscribe(c echo.Context) error {
	if err := h.subscriberUseCase.Unsubscribe(c.Request().Context(), c.Param("token")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Unsubscribed successfully",
	})
}
