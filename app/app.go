// Package app wires configuration, storage and services into one container
// shared by the HTTP server and the CLI commands.
package app

import (
	"context"
	"fmt"

	"github.com/Govind-619/TurboLeague/config"
	"github.com/Govind-619/TurboLeague/events"
	"github.com/Govind-619/TurboLeague/gateway"
	"github.com/Govind-619/TurboLeague/notification"
	"github.com/Govind-619/TurboLeague/repository"
	"github.com/Govind-619/TurboLeague/routes"
	"github.com/Govind-619/TurboLeague/services"
	"github.com/Govind-619/TurboLeague/storage"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Externals are the clients for services outside the process
type Externals struct {
	Gateway   gateway.Gateway
	Mailer    notification.Mailer
	Store     storage.ObjectStore
	Publisher events.Publisher
}

// Container holds the services built from one configuration
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	Auth          *services.AuthService
	Registrations *services.RegistrationService
	Payments      *services.PaymentService
	Reminders     *services.ReminderService
	Uploads       *services.UploadService
	Leads         *services.LeadService

	localUploadDir string
}

// NewExternals builds the real gateway, mailer, object store and publisher
func NewExternals(ctx context.Context, cfg *config.Config) (Externals, error) {
	ext := Externals{
		Gateway: gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayWebhookSecret),
		Mailer: notification.NewSMTPMailer(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
			FromName: utils.AppName,
		}),
		Publisher: events.NopPublisher{},
	}

	switch cfg.StorageDriver {
	case "s3":
		store, err := storage.NewS3Store(ctx, storage.S3Options{
			Region:    cfg.AWSRegion,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
		if err != nil {
			return ext, err
		}
		ext.Store = store
	case "local":
		store, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
		if err != nil {
			return ext, err
		}
		ext.Store = store
	default:
		return ext, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}

	if cfg.EventsQueueURL != "" {
		pub, err := events.NewSQSPublisher(ctx, cfg.AWSRegion, cfg.EventsQueueURL)
		if err != nil {
			return ext, err
		}
		ext.Publisher = pub
		utils.LogInfo("Publishing payment events to %s", cfg.EventsQueueURL)
	}
	return ext, nil
}

// New builds every service on top of db and the given externals
func New(cfg *config.Config, db *gorm.DB, ext Externals) *Container {
	registrationRepo := repository.NewRegistrationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	pricing := services.NewPricing(cfg.LeaguePricing, cfg.DefaultLeaguePrice)

	c := &Container{
		Config:        cfg,
		DB:            db,
		Auth:          services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpire),
		Registrations: services.NewRegistrationService(registrationRepo, pricing),
		Payments:      services.NewPaymentService(paymentRepo, registrationRepo, ext.Gateway, ext.Publisher, pricing),
		Reminders:     services.NewReminderService(registrationRepo, paymentRepo, ext.Mailer, pricing, cfg.ReminderConcurrency),
		Uploads:       services.NewUploadService(ext.Store),
		Leads:         services.NewLeadService(leadRepo),
	}
	if local, ok := ext.Store.(*storage.LocalStore); ok {
		c.localUploadDir = local.Dir()
	}
	return c
}

// Router builds the HTTP router for the container's services
func (c *Container) Router() *gin.Engine {
	return routes.SetupRouter(routes.Dependencies{
		Auth:           c.Auth,
		Registrations:  c.Registrations,
		Payments:       c.Payments,
		Reminders:      c.Reminders,
		Uploads:        c.Uploads,
		Leads:          c.Leads,
		CORSOrigin:     c.Config.CORSOrigin,
		RateLimitRPS:   c.Config.RateLimitRPS,
		RateLimitBurst: c.Config.RateLimitBurst,
		LocalUploadDir: c.localUploadDir,
	})
}
