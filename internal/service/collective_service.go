package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

const DefaultActivityFeedLimit = 50

type CollectiveService struct {
	uow            uow.UOW
	collectiveRepo CollectiveRepository
	transRepo      TransactionRepository
	hostAppRepo    HostApplicationRepository
}

func NewCollectiveService(u uow.UOW) (*CollectiveService, error) {
	collectiveRepo, collectiveRepoErr :=
		uow.GetRepositoryAs[CollectiveRepository](u, uow.RepositoryName(repoargs.CollectiveRepoName))
	if collectiveRepoErr != nil {
		return nil, collectiveRepoErr
	}
	transRepo, transRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transRepoErr != nil {
		return nil, transRepoErr
	}
	hostAppRepo, hostAppRepoErr :=
		uow.GetRepositoryAs[HostApplicationRepository](u, uow.RepositoryName(repoargs.HostApplicationRepoName))
	if hostAppRepoErr != nil {
		return nil, hostAppRepoErr
	}
	return &CollectiveService{
		uow:            u,
		collectiveRepo: collectiveRepo,
		transRepo:      transRepo,
		hostAppRepo:    hostAppRepo,
	}, nil
}

type CreateCollectiveArgs struct {
	Slug     string
	Name     string
	Currency string
	IsHost   bool
	UserID   int64
}

// Create создает коллектив (или организацию-хоста) вместе с активностью в
// одной транзакции. При конфликте slug возвращает domain.ErrDuplicateKey.
func (s *CollectiveService) Create(ctx context.Context, args CreateCollectiveArgs) (*domain.Collective, error) {
	collectiveType := domain.CollectiveTypeCollective
	if args.IsHost {
		collectiveType = domain.CollectiveTypeOrganization
	}

	var collective *domain.Collective
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		collectiveRepo, repoErr :=
			uow.GetAs[CollectiveRepository](tx, uow.RepositoryName(repoargs.CollectiveRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		collective, createErr = collectiveRepo.CreateCollective(c, repoargs.CreateCollective{
			Slug:        args.Slug,
			Name:        args.Name,
			Type:        collectiveType,
			Currency:    args.Currency,
			IsHost:      args.IsHost,
			CreatedByID: args.UserID,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityCollectiveCreated,
			CollectiveID: collective.ID,
			UserID:       args.UserID,
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating collective: %w", txErr)
	}
	return collective, nil
}

func (s *CollectiveService) GetBySlug(ctx context.Context, slug string) (*domain.Collective, error) {
	collective, err := s.collectiveRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return collective, nil
}

type CollectiveBalance struct {
	CollectiveID int64
	Currency     string
	Balance      decimal.Decimal
}

// GetBalance считает баланс коллектива агрегацией по леджеру. Дебеты хранятся
// отрицательными, поэтому баланс — это сумма двух агрегатов.
func (s *CollectiveService) GetBalance(ctx context.Context, slug string) (*CollectiveBalance, error) {
	collective, collectiveErr := s.collectiveRepo.FindBySlug(ctx, slug)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}

	aggregation, sumErr := s.transRepo.GetAccountBalance(ctx, collective.ID)
	if sumErr != nil {
		return nil, sumErr //nolint:wrapcheck
	}

	return &CollectiveBalance{
		CollectiveID: collective.ID,
		Currency:     collective.Currency,
		Balance:      aggregation.CreditAmount.Add(aggregation.DebitAmount),
	}, nil
}

type ApplyToHostArgs struct {
	CollectiveSlug string
	HostSlug       string
	Message        string
	UserID         int64
}

// ApplyToHost создает заявку коллектива на фискальное спонсорство. Заявку может
// подать только админ коллектива; принимающая сторона обязана быть хостом.
func (s *CollectiveService) ApplyToHost(ctx context.Context, args ApplyToHostArgs) (*domain.HostApplication, error) {
	collective, collectiveErr := s.collectiveRepo.FindBySlug(ctx, args.CollectiveSlug)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}
	if collective.CreatedByID != args.UserID {
		return nil, fmt.Errorf("applying to host: %w", domain.ErrForbidden)
	}

	host, hostErr := s.collectiveRepo.FindBySlug(ctx, args.HostSlug)
	if hostErr != nil {
		return nil, hostErr //nolint:wrapcheck
	}
	if !host.IsHost {
		return nil, fmt.Errorf("applying to host: %w", domain.ErrNotAHost)
	}

	var application *domain.HostApplication
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		hostAppRepo, repoErr :=
			uow.GetAs[HostApplicationRepository](tx, uow.RepositoryName(repoargs.HostApplicationRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		application, createErr = hostAppRepo.CreateHostApplication(c, repoargs.CreateHostApplication{
			CollectiveID: collective.ID,
			HostID:       host.ID,
			Message:      args.Message,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityHostApplied,
			CollectiveID: host.ID,
			UserID:       args.UserID,
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("applying to host: %w", txErr)
	}
	return application, nil
}

// ApproveApplication одобряет заявку: коллектив закрепляется за хостом и
// наследует его процент комиссии. Операция доступна только админу хоста.
func (s *CollectiveService) ApproveApplication(
	ctx context.Context,
	applicationID int64,
	userID int64,
) (*domain.HostApplication, error) {
	application, host, loadErr := s.loadApplicationForReview(ctx, applicationID, userID)
	if loadErr != nil {
		return nil, loadErr
	}

	var approved *domain.HostApplication
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		hostAppRepo, hostAppRepoErr :=
			uow.GetAs[HostApplicationRepository](tx, uow.RepositoryName(repoargs.HostApplicationRepoName))
		if hostAppRepoErr != nil {
			return hostAppRepoErr //nolint:wrapcheck
		}
		collectiveRepo, collectiveRepoErr :=
			uow.GetAs[CollectiveRepository](tx, uow.RepositoryName(repoargs.CollectiveRepoName))
		if collectiveRepoErr != nil {
			return collectiveRepoErr //nolint:wrapcheck
		}

		var updErr error
		approved, updErr = hostAppRepo.UpdateStatus(c, application.ID, domain.HostApplicationApproved)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		if _, attachErr := collectiveRepo.AttachToHost(c, repoargs.AttachToHost{
			CollectiveID:   application.CollectiveID,
			HostID:         host.ID,
			HostFeePercent: host.HostFeePercent,
		}); attachErr != nil {
			return attachErr //nolint:wrapcheck
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityHostApproved,
			CollectiveID: application.CollectiveID,
			UserID:       userID,
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("approving host application: %w", txErr)
	}
	return approved, nil
}

// RejectApplication отклоняет заявку. Операция доступна только админу хоста.
func (s *CollectiveService) RejectApplication(
	ctx context.Context,
	applicationID int64,
	userID int64,
) (*domain.HostApplication, error) {
	application, _, loadErr := s.loadApplicationForReview(ctx, applicationID, userID)
	if loadErr != nil {
		return nil, loadErr
	}

	var rejected *domain.HostApplication
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		hostAppRepo, repoErr :=
			uow.GetAs[HostApplicationRepository](tx, uow.RepositoryName(repoargs.HostApplicationRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		rejected, updErr = hostAppRepo.UpdateStatus(c, application.ID, domain.HostApplicationRejected)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		return recordActivity(c, tx, repoargs.CreateActivity{
			Type:         domain.ActivityHostRejected,
			CollectiveID: application.CollectiveID,
			UserID:       userID,
		})
	})

	if txErr != nil {
		return nil, fmt.Errorf("rejecting host application: %w", txErr)
	}
	return rejected, nil
}

func (s *CollectiveService) Activities(ctx context.Context, slug string) ([]domain.Activity, error) {
	collective, collectiveErr := s.collectiveRepo.FindBySlug(ctx, slug)
	if collectiveErr != nil {
		return nil, collectiveErr //nolint:wrapcheck
	}

	activityRepo, activityRepoErr :=
		uow.GetRepositoryAs[ActivityRepository](s.uow, uow.RepositoryName(repoargs.ActivityRepoName))
	if activityRepoErr != nil {
		return nil, activityRepoErr
	}
	activities, err := activityRepo.GetByCollectiveID(ctx, collective.ID, DefaultActivityFeedLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return activities, nil
}

// loadApplicationForReview загружает PENDING заявку и проверяет, что userID
// является админом хоста.
func (s *CollectiveService) loadApplicationForReview(
	ctx context.Context,
	applicationID int64,
	userID int64,
) (*domain.HostApplication, *domain.Collective, error) {
	application, applicationErr := s.hostAppRepo.FindByID(ctx, applicationID)
	if applicationErr != nil {
		return nil, nil, applicationErr //nolint:wrapcheck
	}
	if application.Status != domain.HostApplicationPending {
		return nil, nil, fmt.Errorf(
			"reviewing host application: application %d is already %s: %w",
			applicationID, application.Status, domain.ErrForbidden,
		)
	}

	host, hostErr := s.collectiveRepo.FindByID(ctx, application.HostID)
	if hostErr != nil {
		return nil, nil, hostErr //nolint:wrapcheck
	}
	if host.CreatedByID != userID {
		return nil, nil, fmt.Errorf("reviewing host application: %w", domain.ErrForbidden)
	}
	return application, host, nil
}

// recordActivity пишет активность внутри открытой uow-транзакции.
func recordActivity(ctx context.Context, tx uow.TX, args repoargs.CreateActivity) error {
	activityRepo, repoErr := uow.GetAs[ActivityRepository](tx, uow.RepositoryName(repoargs.ActivityRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	if args.Data == nil {
		args.Data = []byte("{}")
	}
	if _, err := activityRepo.CreateActivity(ctx, args); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

// activityPayload сериализует произвольные поля активности; при ошибке
// маршалинга возвращает пустой объект, активность не должна ронять операцию.
func activityPayload(fields map[string]any) []byte {
	data, err := json.Marshal(fields)
	if err != nil {
		return []byte("{}")
	}
	return data
}
