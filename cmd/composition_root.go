package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/auth"
	"parcels/internal/adapters/out/events"
	"parcels/internal/adapters/out/mailer"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/adapters/out/qrcode"
	"parcels/internal/adapters/out/sessionstore"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	logger     *slog.Logger

	tariff    parcel.Tariff
	sessions  ports.SessionStore
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	mailer    ports.Mailer
	publisher ports.EventPublisher
	qr        ports.QRGenerator

	closers []func() error
}

// NewCompositionRoot builds the adapters selected by config. Optional
// infrastructure falls back to in-process implementations: memory sessions
// without Redis, no-op events without RabbitMQ, logged mail without SendGrid.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config: config,
		gormDB: gormDB,
		clock:  kernel.SystemClock{},
		logger: logger,
		qr:     qrcode.NewGenerator(),
	}

	tariff, err := parcel.NewTariff(config.BaseFee, config.PerKgFee)
	if err != nil {
		return nil, err
	}
	c.tariff = tariff

	hasher, err := auth.NewBcryptHasher(config.BcryptCost)
	if err != nil {
		return nil, err
	}
	c.hasher = hasher

	issuer, err := auth.NewJWTIssuer(config.JWTSecret, config.TokenTTL, config.TemporaryTokenTTL, c.clock)
	if err != nil {
		return nil, err
	}
	c.issuer = issuer

	if err = c.initSessions(ctx); err != nil {
		c.Close()
		return nil, err
	}
	if err = c.initPublisher(); err != nil {
		c.Close()
		return nil, err
	}
	c.initMailer()
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, c.publisher, logger)

	return c, nil
}

func (c *CompositionRoot) initSessions(ctx context.Context) error {
	if c.config.RedisAddr == "" {
		c.logger.Info("Using in-memory session store")
		c.sessions = sessionstore.NewMemoryStore()
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.config.RedisAddr,
		Password: c.config.RedisPassword,
		DB:       c.config.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis at %s: %w", c.config.RedisAddr, err)
	}

	c.closers = append(c.closers, client.Close)
	c.sessions = sessionstore.NewRedisStore(client, c.config.SessionNamespace)
	c.logger.Info("Using Redis session store", "addr", c.config.RedisAddr)
	return nil
}

func (c *CompositionRoot) initPublisher() error {
	if c.config.RabbitMQURL == "" {
		c.publisher = events.NewNoopPublisher(c.logger)
		return nil
	}

	publisher, err := events.NewRabbitMQPublisher(c.config.RabbitMQURL, c.config.RabbitMQExchange)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, publisher.Close)
	c.publisher = publisher
	c.logger.Info("Publishing status events to RabbitMQ", "exchange", c.config.RabbitMQExchange)
	return nil
}

func (c *CompositionRoot) initMailer() {
	if c.config.SendGridAPIKey == "" {
		c.logger.Warn("SENDGRID_API_KEY not set, e-mails are only logged")
		c.mailer = mailer.NewLogMailer(c.logger)
		return
	}
	c.mailer = mailer.NewSendGridMailer(c.config.SendGridAPIKey, c.config.MailFromName, c.config.MailFromAddress)
}

// Close releases broker and cache connections.
func (c *CompositionRoot) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			c.logger.Warn("close dependency", "error", err)
		}
	}
	c.closers = nil
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(
		c.userUoWFactory(), c.hasher, c.mailer, c.clock, c.config.PublicBaseURL, c.logger)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.userUoWFactory(), c.hasher, c.clock)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.sessions, c.hasher, c.issuer, c.clock)
}

func (c *CompositionRoot) CreateRequestCodeCommandHandler() commands.RequestCodeCommandHandler {
	return commands.NewRequestCodeCommandHandler(c.sessions, c.mailer, c.clock, c.config.OneTimeCodeTTL, c.logger)
}

func (c *CompositionRoot) CreateVerifyCodeCommandHandler() commands.VerifyCodeCommandHandler {
	return commands.NewVerifyCodeCommandHandler(c.sessions, c.clock)
}

func (c *CompositionRoot) CreateConfirmEmailCommandHandler() commands.ConfirmEmailCommandHandler {
	return commands.NewConfirmEmailCommandHandler(c.userUoWFactory(), c.issuer, c.clock)
}

func (c *CompositionRoot) CreateResendVerificationCommandHandler() commands.ResendVerificationCommandHandler {
	return commands.NewResendVerificationCommandHandler(
		c.userUoWFactory(), c.mailer, c.clock, c.config.PublicBaseURL, c.logger)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreatePurgeSessionsCommandHandler() commands.PurgeSessionsCommandHandler {
	return commands.NewPurgeSessionsCommandHandler(c.sessions, c.clock)
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	return commands.NewRegisterParcelCommandHandler(c.fullUoWFactory(), c.tariff, c.config.TrackingPrefix, c.clock)
}

func (c *CompositionRoot) CreateEditParcelCommandHandler() commands.EditParcelCommandHandler {
	return commands.NewEditParcelCommandHandler(c.parcelUoWFactory(), c.tariff, c.clock)
}

func (c *CompositionRoot) CreateReviewParcelCommandHandler() commands.ReviewParcelCommandHandler {
	return commands.NewReviewParcelCommandHandler(c.parcelUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.parcelUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignMessengerCommandHandler() commands.AssignMessengerCommandHandler {
	return commands.NewAssignMessengerCommandHandler(
		c.fullUoWFactory(), services.NewMessengerDispatcher(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateScanParcelCommandHandler() commands.ScanParcelCommandHandler {
	return commands.NewScanParcelCommandHandler(c.fullUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateRemoveParcelCommandHandler() commands.RemoveParcelCommandHandler {
	return commands.NewRemoveParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateAuthorizeQueryHandler() queries.AuthorizeQueryHandler {
	return queries.NewAuthorizeQueryHandler(c.issuer, c.sessions, c.clock)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQRQueryHandler() queries.GetParcelQRQueryHandler {
	return queries.NewGetParcelQRQueryHandler(c.gormDB, c.qr)
}

func (c *CompositionRoot) CreateGetReportQueryHandler() queries.GetReportQueryHandler {
	return queries.NewGetReportQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB, c.clock)
}

// CreateHTTPHandlers wires every use case exposed over HTTP.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		Authorize: c.CreateAuthorizeQueryHandler(),

		RegisterUser:       c.CreateRegisterUserCommandHandler(),
		UpdateUser:         c.CreateUpdateUserCommandHandler(),
		ChangePassword:     c.CreateChangePasswordCommandHandler(),
		DeleteUser:         c.CreateDeleteUserCommandHandler(),
		ListUsers:          c.CreateListUsersQueryHandler(),
		GetUser:            c.CreateGetUserQueryHandler(),
		Login:              c.CreateLoginCommandHandler(),
		RequestCode:        c.CreateRequestCodeCommandHandler(),
		VerifyCode:         c.CreateVerifyCodeCommandHandler(),
		ConfirmEmail:       c.CreateConfirmEmailCommandHandler(),
		ResendVerification: c.CreateResendVerificationCommandHandler(),
		Logout:             c.CreateLogoutCommandHandler(),

		RegisterParcel:     c.CreateRegisterParcelCommandHandler(),
		EditParcel:         c.CreateEditParcelCommandHandler(),
		ReviewParcel:       c.CreateReviewParcelCommandHandler(),
		UpdateParcelStatus: c.CreateUpdateParcelStatusCommandHandler(),
		AssignMessenger:    c.CreateAssignMessengerCommandHandler(),
		ScanParcel:         c.CreateScanParcelCommandHandler(),
		RemoveParcel:       c.CreateRemoveParcelCommandHandler(),
		GetParcel:          c.CreateGetParcelQueryHandler(),
		ListParcels:        c.CreateListParcelsQueryHandler(),
		TrackParcel:        c.CreateTrackParcelQueryHandler(),
		ParcelHistory:      c.CreateGetParcelHistoryQueryHandler(),
		ParcelQR:           c.CreateGetParcelQRQueryHandler(),

		Report:    c.CreateGetReportQueryHandler(),
		Dashboard: c.CreateGetDashboardQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePurgeSessionsCommandHandler(), c.config.SessionCleanupSchedule, c.logger)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
