package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/lending-service/pkg/kafka"
	"github.com/campuskit/lending-service/stats/internal/model"
	"go.uber.org/zap"
)

type Repository interface {
	GetStats(ctx context.Context) (model.StatsInfo, error)
	Stats(ctx context.Context, event kafka.EventRequest) error
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

func (r *repository) Stats(ctx context.Context, event kafka.EventRequest) error {
	q := `insert into events (at, event_type, request_uid, equipment_uid, requester, quantity, status)
	values (@at, @event_type, @request_uid, @equipment_uid, @requester, @quantity, @status)`
	args := pgx.NamedArgs{
		"at":            event.At,
		"event_type":    event.Type,
		"request_uid":   event.RequestUid,
		"equipment_uid": event.EquipmentUid,
		"requester":     event.Requester,
		"quantity":      event.Quantity,
		"status":        event.Status,
	}
	_, err := r.db.Exec(ctx, q, args)
	return err
}

func (r *repository) GetStats(ctx context.Context) (model.StatsInfo, error) {
	const q = `
	select requester, max(at) as last_updated,
	       coalesce(count(*) filter (where event_type = 'request.created'), 0) as created,
	       coalesce(count(*) filter (where event_type = 'request.approved'), 0) as approved,
	       coalesce(count(*) filter (where event_type = 'request.denied'), 0) as denied,
	       coalesce(count(*) filter (where event_type = 'request.cancelled'), 0) as cancelled,
	       coalesce(count(*) filter (where event_type = 'request.returned'), 0) as returned,
	       coalesce(sum(quantity) filter (where event_type = 'request.approved'), 0) -
	       coalesce(sum(quantity) filter (where event_type = 'request.returned'), 0) as units_on_loan
	from events
	group by requester
	order by requester
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return model.StatsInfo{}, err
	}
	defer rows.Close()
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RequesterStats])
	if err != nil {
		return model.StatsInfo{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return model.StatsInfo{Data: stats}, nil
}
