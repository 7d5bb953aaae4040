package pgrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

const virtualCardColumns = "uuid, created_at, updated_at, collective_id, name, last4, " +
	"monthly_limit, currency, status"

type VirtualCardRepository struct {
	db uow.DBTX
}

func NewVirtualCardRepository(db uow.DBTX) *VirtualCardRepository {
	return &VirtualCardRepository{db: db}
}

func (v *VirtualCardRepository) CreateVirtualCard(
	ctx context.Context,
	args repoargs.CreateVirtualCard,
) (*domain.VirtualCard, error) {
	row := v.db.QueryRow(ctx, `
		INSERT INTO virtual_cards (uuid, collective_id, name, last4, monthly_limit, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+virtualCardColumns,
		args.UUID, args.CollectiveID, args.Name, args.Last4, args.MonthlyLimit,
		args.Currency, domain.VirtualCardActive,
	)
	card, err := scanVirtualCard(row)
	if err != nil {
		return nil, convertErr(err, "creating virtual card")
	}
	return card, nil
}

func (v *VirtualCardRepository) FindByUUID(ctx context.Context, cardUUID uuid.UUID) (*domain.VirtualCard, error) {
	row := v.db.QueryRow(ctx, `SELECT `+virtualCardColumns+` FROM virtual_cards WHERE uuid = $1`, cardUUID)
	card, err := scanVirtualCard(row)
	if err != nil {
		return nil, convertErr(err, "finding virtual card by uuid %s", cardUUID)
	}
	return card, nil
}

func (v *VirtualCardRepository) UpdateStatus(
	ctx context.Context,
	cardUUID uuid.UUID,
	status domain.VirtualCardStatusType,
) (*domain.VirtualCard, error) {
	row := v.db.QueryRow(ctx, `
		UPDATE virtual_cards SET status = $1, updated_at = now() WHERE uuid = $2
		RETURNING `+virtualCardColumns,
		status, cardUUID,
	)
	card, err := scanVirtualCard(row)
	if err != nil {
		return nil, convertErr(err, "updating virtual card %s status", cardUUID)
	}
	return card, nil
}

func scanVirtualCard(row rowScanner) (*domain.VirtualCard, error) {
	var card domain.VirtualCard
	err := row.Scan(
		&card.UUID,
		&card.CreatedAt,
		&card.UpdatedAt,
		&card.CollectiveID,
		&card.Name,
		&card.Last4,
		&card.MonthlyLimit,
		&card.Currency,
		&card.Status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &card, nil
}
