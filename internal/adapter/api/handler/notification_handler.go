package handler

import (
	"github.com/labstack/echo/v4"

	"starlinkwifi/internal/infrastructure/notification"
	"starlinkwifi/pkg/response"
)

type NotificationHandler struct {
	dispatcher *notification.Dispatcher
}

func NewNotificationHandler(dispatcher *notification.Dispatcher) *NotificationHandler {
	return &NotificationHandler{
		dispatcher: dispatcher,
	}
}

type sendNotificationRequest struct {
	To       string `json:"to" validate:"required,email"`
	Subject  string `json:"subject" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Template string `json:"template" validate:"omitempty,oneof=default admin"`
}

// SendNotification is the manual admin send. It dispatches synchronously and
// reports the delivery result; a failed delivery is still a 200, the outcome
// lives in the result body.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if req.Template == "" {
		req.Template = notification.TemplateDefault
	}

	result := h.dispatcher.Dispatch(c.Request().Context(), notification.Notification{
		Channel:   notification.ChannelEmail,
		Recipient: req.To,
		Subject:   req.Subject,
		Body:      req.Content,
		Template:  req.Template,
	})

	return response.Success(c, result)
}
