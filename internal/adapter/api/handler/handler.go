package handler

import (
	"starlinkwifi/internal/infrastructure/notification"
	"starlinkwifi/internal/infrastructure/websocket"
	"starlinkwifi/internal/usecase"
)

var (
	authHandler         *AuthHandler
	messageHandler      *MessageHandler
	galleryHandler      *GalleryHandler
	bundleHandler       *BundleHandler
	updateHandler       *UpdateHandler
	subscriberHandler   *SubscriberHandler
	notificationHandler *NotificationHandler
	websocketHandler    *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	messageUseCase *usecase.MessageUseCase,
	galleryUseCase *usecase.GalleryUseCase,
	bundleUseCase *usecase.BundleUseCase,
	updateUseCase *usecase.UpdateUseCase,
	subscriberUseCase *usecase.SubscriberUseCase,
	dispatcher *notification.Dispatcher,
	wsManager *websocket.Manager,
) {
	authHandler = NewAuthHandler(authUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	galleryHandler = NewGalleryHandler(galleryUseCase)
	bundleHandler = NewBundleHandler(bundleUseCase)
	updateHandler = NewUpdateHandler(updateUseCase)
	subscriberHandler = NewSubscriberHandler(subscriberUseCase)
	notificationHandler = NewNotificationHandler(dispatcher)
	websocketHandler = NewWebSocketHandler(wsManager)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetGalleryHandler() *GalleryHandler {
	return galleryHandler
}

func GetBundleHandler() *BundleHandler {
	return bundleHandler
}

func GetUpdateHandler() *UpdateHandler {
	return updateHandler
}

func GetSubscriberHandler() *SubscriberHandler {
	return subscriberHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return websocketHandler
}
