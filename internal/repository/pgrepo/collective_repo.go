package pgrepo

import (
	"context"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

const collectiveColumns = "id, created_at, updated_at, slug, name, type, currency, " +
	"host_id, host_fee_percent, is_host, created_by_id"

type CollectiveRepository struct {
	db uow.DBTX
}

func NewCollectiveRepository(db uow.DBTX) *CollectiveRepository {
	return &CollectiveRepository{db: db}
}

// CreateCollective создает аккаунт. При конфликте slug возвращает domain.ErrDuplicateKey.
func (c *CollectiveRepository) CreateCollective(
	ctx context.Context,
	args repoargs.CreateCollective,
) (*domain.Collective, error) {
	row := c.db.QueryRow(ctx, `
		INSERT INTO collectives (slug, name, type, currency, is_host, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+collectiveColumns,
		args.Slug, args.Name, args.Type, args.Currency, args.IsHost, args.CreatedByID,
	)
	collective, err := scanCollective(row)
	if err != nil {
		return nil, convertErr(err, "creating collective with slug `%s`", args.Slug)
	}
	return collective, nil
}

func (c *CollectiveRepository) FindBySlug(ctx context.Context, slug string) (*domain.Collective, error) {
	row := c.db.QueryRow(ctx, `SELECT `+collectiveColumns+` FROM collectives WHERE slug = $1`, slug)
	collective, err := scanCollective(row)
	if err != nil {
		return nil, convertErr(err, "finding collective by slug `%s`", slug)
	}
	return collective, nil
}

func (c *CollectiveRepository) FindByID(ctx context.Context, id int64) (*domain.Collective, error) {
	row := c.db.QueryRow(ctx, `SELECT `+collectiveColumns+` FROM collectives WHERE id = $1`, id)
	collective, err := scanCollective(row)
	if err != nil {
		return nil, convertErr(err, "finding collective by id %d", id)
	}
	return collective, nil
}

// AttachToHost закрепляет коллектив за хостом с указанным процентом комиссии.
func (c *CollectiveRepository) AttachToHost(
	ctx context.Context,
	args repoargs.AttachToHost,
) (*domain.Collective, error) {
	row := c.db.QueryRow(ctx, `
		UPDATE collectives
		SET host_id = $1, host_fee_percent = $2, updated_at = now()
		WHERE id = $3
		RETURNING `+collectiveColumns,
		args.HostID, args.HostFeePercent, args.CollectiveID,
	)
	collective, err := scanCollective(row)
	if err != nil {
		return nil, convertErr(err, "attaching collective %d to host %d", args.CollectiveID, args.HostID)
	}
	return collective, nil
}

func scanCollective(row rowScanner) (*domain.Collective, error) {
	var collective domain.Collective
	err := row.Scan(
		&collective.ID,
		&collective.CreatedAt,
		&collective.UpdatedAt,
		&collective.Slug,
		&collective.Name,
		&collective.Type,
		&collective.Currency,
		&collective.HostID,
		&collective.HostFeePercent,
		&collective.IsHost,
		&collective.CreatedByID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &collective, nil
}
