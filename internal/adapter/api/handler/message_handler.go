package handler

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/usecase"
	"starlinkwifi/pkg/response"
	"starlinkwifi/pkg/utils"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type createMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message" validate:"required"`
}

// CreateMessage serves the public contact form.
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.CreateMessage(c.Request().Context(), usecase.CreateMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	params := utils.GetListParams(c, 100)
	unreadOnly := c.QueryParam("unread") == "true"

	messages, err := h.messageUseCase.ListMessages(c.Request().Context(), unreadOnly, params.Limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *MessageHandler) UnreadCount(c echo.Context) error {
	count, err := h.messageUseCase.UnreadCount(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{"count": count})
}

func (h *MessageHandler) ToggleRead(c echo.Context) error {
	message, err := h.messageUseCase.ToggleRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, message)
}

func (h *MessageHandler) MarkResponded(c echo.Context) error {
	message, err := h.messageUseCase.MarkResponded(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, message)
}

func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	if err := h.messageUseCase.DeleteMessage(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Message deleted successfully",
	})
}
