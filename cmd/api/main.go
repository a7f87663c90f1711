package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"starlinkwifi/internal/adapter/api"
	"starlinkwifi/internal/adapter/api/handler"
	apimiddleware "starlinkwifi/internal/adapter/api/middleware"
	"starlinkwifi/internal/adapter/api/router"
	adapterrepo "starlinkwifi/internal/adapter/repository"
	"starlinkwifi/internal/domain/repository"
	"starlinkwifi/internal/infrastructure/notification"
	"starlinkwifi/internal/infrastructure/storage"
	"starlinkwifi/internal/infrastructure/websocket"
	"starlinkwifi/internal/usecase"
	"starlinkwifi/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var store repository.Store
	var pushSender *notification.FCMSender
	var storageClient *storage.CloudStorageClient

	switch cfg.StoreBackend {
	case "firestore":
		opt := firebaseCredentials()

		firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}

		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		store = adapterrepo.NewFirestoreStore(firestoreClient)

		messagingClient, err := firebaseApp.Messaging(ctx)
		if err != nil {
			log.Printf("Push channel unavailable: %v", err)
		} else {
			pushSender = notification.NewFCMSender(messagingClient)
		}

		if cfg.StorageBucket != "" {
			storageClient, err = storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opt)
			if err != nil {
				log.Fatalf("Failed to initialize Cloud Storage: %v", err)
			}
			defer storageClient.Close()
		}

	case "local":
		store, err = adapterrepo.NewLocalStore(cfg.LocalStorePath)
		if err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}

	default:
		log.Fatalf("Unknown store backend %q, expected local or firestore", cfg.StoreBackend)
	}

	var emailSender notification.EmailSender
	if cfg.SMTPHost != "" {
		emailSender = notification.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailSender)
	}

	var push notification.PushSender
	if pushSender != nil {
		push = pushSender
	}
	dispatcher := notification.NewDispatcher(emailSender, push, 64)
	dispatcher.Start(ctx)
	defer dispatcher.Close()

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	subscriberUseCase := usecase.NewSubscriberUseCase(store)
	if pushSender != nil {
		pushSender.OnDeadToken = func(ctx context.Context, token string) {
			subscriberUseCase.Unsubscribe(ctx, token)
		}
	}

	authUseCase := usecase.NewAuthUseCase(store, cfg.JWTSecret, cfg.JWTExpiry)
	if err := authUseCase.EnsureSeedAdmin(ctx, cfg.AdminEmail, cfg.AdminInitialPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	messageUseCase := usecase.NewMessageUseCase(store, dispatcher, cfg.AdminEmail)

	var objects usecase.ObjectStorage
	if storageClient != nil {
		objects = storageClient
	}
	galleryUseCase := usecase.NewGalleryUseCase(store, objects, dispatcher, cfg.AdminEmail)

	bundleUseCase := usecase.NewBundleUseCase(store, dispatcher, cfg.AdminEmail)
	updateUseCase := usecase.NewUpdateUseCase(store, subscriberUseCase, dispatcher, wsManager, cfg.AdminEmail, cfg.SiteURL)

	handler.Setup(authUseCase, messageUseCase, galleryUseCase, bundleUseCase, updateUseCase, subscriberUseCase, dispatcher, wsManager)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	adminMiddleware := apimiddleware.NewAdminMiddleware(authUseCase)

	router.Setup(e, adminMiddleware)

	log.Printf("Starting server on port %s with %s store...", cfg.ServerPort, cfg.StoreBackend)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

// firebaseCredentials prefers inline service account JSON (production) and
// falls back to a key file path for local development.
func firebaseCredentials() option.ClientOption {
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		return option.WithCredentialsJSON([]byte(serviceAccountJSON))
	}

	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountPath == "" {
		serviceAccountPath = "./service-account.json"
	}
	if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
		log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
	}

	log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
	return option.WithCredentialsFile(serviceAccountPath)
}
