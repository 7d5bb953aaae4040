package pgrepo

import (
	"context"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
)

const activityColumns = "id, created_at, type, collective_id, user_id, data"

type ActivityRepository struct {
	db uow.DBTX
}

func NewActivityRepository(db uow.DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (a *ActivityRepository) CreateActivity(ctx context.Context, args repoargs.CreateActivity) (*domain.Activity, error) {
	row := a.db.QueryRow(ctx, `
		INSERT INTO activities (type, collective_id, user_id, data)
		VALUES ($1, $2, $3, $4)
		RETURNING `+activityColumns,
		args.Type, args.CollectiveID, args.UserID, args.Data,
	)
	activity, err := scanActivity(row)
	if err != nil {
		return nil, convertErr(err, "creating activity %s", args.Type)
	}
	return activity, nil
}

func (a *ActivityRepository) GetByCollectiveID(
	ctx context.Context,
	collectiveID int64,
	limit uint,
) ([]domain.Activity, error) {
	rows, err := a.db.Query(ctx, `
		SELECT `+activityColumns+` FROM activities
		WHERE collective_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		collectiveID, int64(limit))
	if err != nil {
		return nil, convertErr(err, "getting activities by collectiveID `%d`", collectiveID)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, scanErr := scanActivity(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning activities by collectiveID `%d`", collectiveID)
		}
		activities = append(activities, *activity)
	}
	return activities, convertErr(rows.Err(), "getting activities by collectiveID `%d`", collectiveID)
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var activity domain.Activity
	err := row.Scan(
		&activity.ID,
		&activity.CreatedAt,
		&activity.Type,
		&activity.CollectiveID,
		&activity.UserID,
		&activity.Data,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &activity, nil
}
