package pgrepo

import (
	"context"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

const hostApplicationColumns = "id, created_at, updated_at, collective_id, host_id, status, message"

type HostApplicationRepository struct {
	db uow.DBTX
}

func NewHostApplicationRepository(db uow.DBTX) *HostApplicationRepository {
	return &HostApplicationRepository{db: db}
}

// CreateHostApplication создает заявку. Частичный уникальный индекс в базе
// не позволяет держать больше одной PENDING заявки на коллектив.
func (h *HostApplicationRepository) CreateHostApplication(
	ctx context.Context,
	args repoargs.CreateHostApplication,
) (*domain.HostApplication, error) {
	row := h.db.QueryRow(ctx, `
		INSERT INTO host_applications (collective_id, host_id, status, message)
		VALUES ($1, $2, $3, $4)
		RETURNING `+hostApplicationColumns,
		args.CollectiveID, args.HostID, domain.HostApplicationPending, args.Message,
	)
	application, err := scanHostApplication(row)
	if err != nil {
		return nil, convertErr(err, "creating host application")
	}
	return application, nil
}

func (h *HostApplicationRepository) FindByID(ctx context.Context, id int64) (*domain.HostApplication, error) {
	row := h.db.QueryRow(ctx, `SELECT `+hostApplicationColumns+` FROM host_applications WHERE id = $1`, id)
	application, err := scanHostApplication(row)
	if err != nil {
		return nil, convertErr(err, "finding host application by id %d", id)
	}
	return application, nil
}

func (h *HostApplicationRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.HostApplicationStatusType,
) (*domain.HostApplication, error) {
	row := h.db.QueryRow(ctx, `
		UPDATE host_applications SET status = $1, updated_at = now() WHERE id = $2
		RETURNING `+hostApplicationColumns,
		status, id,
	)
	application, err := scanHostApplication(row)
	if err != nil {
		return nil, convertErr(err, "updating host application %d status", id)
	}
	return application, nil
}

func (h *HostApplicationRepository) GetByHostID(ctx context.Context, hostID int64) ([]domain.HostApplication, error) {
	rows, err := h.db.Query(ctx, `
		SELECT `+hostApplicationColumns+` FROM host_applications
		WHERE host_id = $1 ORDER BY created_at DESC`, hostID)
	if err != nil {
		return nil, convertErr(err, "getting host applications by hostID `%d`", hostID)
	}
	defer rows.Close()

	var applications []domain.HostApplication
	for rows.Next() {
		application, scanErr := scanHostApplication(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning host applications by hostID `%d`", hostID)
		}
		applications = append(applications, *application)
	}
	return applications, convertErr(rows.Err(), "getting host applications by hostID `%d`", hostID)
}

func scanHostApplication(row rowScanner) (*domain.HostApplication, error) {
	var application domain.HostApplication
	err := row.Scan(
		&application.ID,
		&application.CreatedAt,
		&application.UpdatedAt,
		&application.CollectiveID,
		&application.HostID,
		&application.Status,
		&application.Message,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &application, nil
}
