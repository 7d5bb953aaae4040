package app

import (
	"context"
	"fmt"

	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"

	"github.com/ralexrdz/opencollective-api/internal/transport/fxrates"
	"github.com/ralexrdz/opencollective-api/internal/transport/payout"

	"github.com/ralexrdz/opencollective-api/pkg/uow"

	"github.com/ralexrdz/opencollective-api/internal/config"
	"github.com/ralexrdz/opencollective-api/internal/metrics"
	"github.com/ralexrdz/opencollective-api/internal/repository/pgrepo"
	"github.com/ralexrdz/opencollective-api/internal/service"
	"github.com/ralexrdz/opencollective-api/internal/transport/api"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	fxProvider := fxrates.NewProvider(fxrates.New(a.Config.FxAPIAddress), fxrates.DefaultCacheTTL)
	quoter := payout.NewQuoter(a.Config.PayoutAPIAddress)

	services, sErr := service.NewAppServices(service.AppServicesArgs{
		UOW:               unitOfWork,
		JWTTokenSecret:    []byte(a.Config.JWTUserSecret),
		FxProvider:        fxProvider,
		PayoutQuoter:      quoter,
		PlatformAccountID: a.Config.PlatformAccountID,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		UserService:        services.UserService,
		CollectiveService:  services.CollectiveService,
		OrderService:       services.OrderService,
		ExpenseService:     services.ExpenseService,
		TransactionService: services.TransactionService,
		VirtualCardService: services.VirtualCardService,
		JWTSecretKey:       []byte(a.Config.JWTUserSecret),
		CardWebhookSecret:  a.Config.CardWebhookSecret,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	processor := payout.New(services.ExpenseService, a.Config.PayoutAPIAddress, a.Logger).
		SetPayoutWorkers(5).     //nolint:mnd
		SetLimitPerIteration(50) //nolint:mnd

	go processor.Run(notifyCtx)

	scheduler, cronErr := a.startRecurringCharges(notifyCtx, services.OrderService)
	if cronErr != nil {
		return fmt.Errorf("app run: %s", cronErr.Error())
	}
	defer scheduler.Stop()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// startRecurringCharges запускает cron списаний по активным подпискам.
func (a *App) startRecurringCharges(ctx context.Context, orders *service.OrderService) (*cron.Cron, error) {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(a.Config.RecurringCron, func() {
		charged, chargeErr := orders.ChargeDueRecurring(ctx)
		if chargeErr != nil {
			a.Logger.WithError(chargeErr).Error("recurring charges run")
			metrics.RecurringCharges.WithLabelValues("error").Inc()
			return
		}
		if charged > 0 {
			a.Logger.WithField("charged", charged).Info("recurring charges run")
		}
		metrics.RecurringCharges.WithLabelValues("success").Add(float64(charged))
	})
	if err != nil {
		return nil, fmt.Errorf("schedule recurring charges: %s", err.Error())
	}
	scheduler.Start()
	return scheduler, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.CollectiveRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCollectiveRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.ExpenseRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewExpenseRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.VirtualCardRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewVirtualCardRepository(dbtx)
		},
		repoargs.HostApplicationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewHostApplicationRepository(dbtx)
		},
		repoargs.ActivityRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewActivityRepository(dbtx)
		},
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
