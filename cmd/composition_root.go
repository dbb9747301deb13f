package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpadapter "shippix/internal/adapters/in/http"
	"shippix/internal/adapters/out/fixtures"
	"shippix/internal/adapters/out/memory"
	"shippix/internal/adapters/out/postgres/handoffrepo"
	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/application/usecases/queries"
	"shippix/internal/core/domain/services"
	"shippix/internal/core/ports"
	"shippix/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs Config
	logger  *slog.Logger

	store     ports.HandoffStore
	content   *fixtures.ContentRepository
	estimator services.ShippingEstimator
	gormDB    *gorm.DB
}

// NewCompositionRoot builds the adapters selected by configs. The postgres
// handoff store connects and migrates here; the memory store needs nothing.
func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	content, err := fixtures.NewContentRepository()
	if err != nil {
		return nil, fmt.Errorf("load page content: %w", err)
	}

	root := &CompositionRoot{
		configs:   configs,
		logger:    logger,
		content:   content,
		estimator: services.NewShippingEstimator(services.DefaultRates(), configs.EstimateLatency),
	}

	switch configs.HandoffStore {
	case StorePostgres:
		db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := handoffrepo.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate handoffs: %w", err)
		}
		root.gormDB = db
		root.store = handoffrepo.NewGormHandoffStore(db, configs.HandoffTTL, time.Now)
	default:
		root.store = memory.NewHandoffStore(configs.HandoffTTL, time.Now)
	}

	return root, nil
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) CreateEstimateShippingCommandHandler() commands.EstimateShippingCommandHandler {
	return commands.NewEstimateShippingCommandHandler(c.estimator, c.configs.EstimateTimeout)
}

func (c *CompositionRoot) CreateSubmitDraftCommandHandler() commands.SubmitDraftCommandHandler {
	return commands.NewSubmitDraftCommandHandler(c.store, c.CreateEstimateShippingCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateReceiveHandoffCommandHandler() commands.ReceiveHandoffCommandHandler {
	return commands.NewReceiveHandoffCommandHandler(c.store)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateSaveDraftCommandHandler() commands.SaveDraftCommandHandler {
	return commands.NewSaveDraftCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.store, time.Now, c.logger)
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	return commands.NewAuthenticateCommandHandler(commands.AuthLatency{
		Signup:     c.configs.SignupLatency,
		Login:      c.configs.LoginLatency,
		AdminLogin: c.configs.AdminLoginLatency,
	}, c.logger)
}

func (c *CompositionRoot) CreateRescheduleShipmentCommandHandler() commands.RescheduleShipmentCommandHandler {
	return commands.NewRescheduleShipmentCommandHandler(c.content, c.logger)
}

func (c *CompositionRoot) CreateDecideOrderReviewCommandHandler() commands.DecideOrderReviewCommandHandler {
	return commands.NewDecideOrderReviewCommandHandler(c.content, c.logger)
}

func (c *CompositionRoot) CreateSweepHandoffsCommandHandler() commands.SweepHandoffsCommandHandler {
	return commands.NewSweepHandoffsCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.content)
}

func (c *CompositionRoot) CreateGetShipmentDetailsQueryHandler() queries.GetShipmentDetailsQueryHandler {
	return queries.NewGetShipmentDetailsQueryHandler(c.content)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler()
}

func (c *CompositionRoot) CreateGetPageContentQueryHandler() queries.GetPageContentQueryHandler {
	return queries.NewGetPageContentQueryHandler(c.content)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepHandoffsCommandHandler(), c.configs.HandoffSweepSchedule, c.logger)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		EstimateShipping:   c.CreateEstimateShippingCommandHandler(),
		SubmitDraft:        c.CreateSubmitDraftCommandHandler(),
		ReceiveHandoff:     c.CreateReceiveHandoffCommandHandler(),
		ApproveOrder:       c.CreateApproveOrderCommandHandler(),
		EditOrder:          c.CreateEditOrderCommandHandler(),
		SaveDraft:          c.CreateSaveDraftCommandHandler(),
		PayOrder:           c.CreatePayOrderCommandHandler(),
		Authenticate:       c.CreateAuthenticateCommandHandler(),
		RescheduleShipment: c.CreateRescheduleShipmentCommandHandler(),
		DecideOrderReview:  c.CreateDecideOrderReviewCommandHandler(),
		GetDashboard:       c.CreateGetDashboardQueryHandler(),
		GetShipmentDetails: c.CreateGetShipmentDetailsQueryHandler(),
		GetOrderStatus:     c.CreateGetOrderStatusQueryHandler(),
		GetPageContent:     c.CreateGetPageContentQueryHandler(),
	}, c.logger)
}

// CreateRouter builds the Echo instance of the HTTP server.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	return httpadapter.NewRouter(ctx, c.CreateHTTPServer())
}
