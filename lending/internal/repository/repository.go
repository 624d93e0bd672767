package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campuskit/lending-service/lending/internal/errs"
	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateEquipment(ctx context.Context, eq model.Equipment) (model.Equipment, error)
	GetEquipment(ctx context.Context, equipmentUid string) (model.Equipment, error)
	ListEquipment(ctx context.Context, filter model.EquipmentFilter) (model.ListEquipment, error)
	UpdateEquipment(ctx context.Context, equipmentUid string, upd model.UpdateEquipmentRequest) (model.Equipment, error)
	AdjustCapacity(ctx context.Context, equipmentUid string, quantity, available int) (model.Equipment, error)
	DeleteEquipment(ctx context.Context, equipmentUid string) error
	ListCategories(ctx context.Context) ([]string, error)
	EquipmentStatistics(ctx context.Context) (model.EquipmentStatistics, error)

	CreateRequest(ctx context.Context, req model.CreateRequestRequest, requesterID int) (model.EquipmentRequest, error)
	GetRequest(ctx context.Context, requestUid string) (model.RequestView, error)
	ListRequests(ctx context.Context, filter model.RequestFilter) (model.ListRequests, error)
	ListByRequester(ctx context.Context, username string, status model.Status) ([]model.RequestView, error)
	RequestStatistics(ctx context.Context) (model.RequestStatistics, error)

	ApproveRequest(ctx context.Context, requestUid string, approverID int, notes string) (model.EquipmentRequest, error)
	DenyRequest(ctx context.Context, requestUid string, approverID int, reason string) (model.EquipmentRequest, error)
	CancelRequest(ctx context.Context, requestUid string, requesterID int) (model.EquipmentRequest, error)
	ReturnRequest(ctx context.Context, requestUid string) (model.EquipmentRequest, error)

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, username string) (model.User, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	equipmentTableName = `equipment`
	requestTableName   = `equipment_requests`
	usersTableName     = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// withTx runs fn inside a transaction; a rollback on error leaves the
// persisted state exactly as it was before the call.
func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repository) CreateEquipment(ctx context.Context, eq model.Equipment) (model.Equipment, error) {
	query, args, err := qb.Insert(equipmentTableName).
		Columns("equipment_uid", "name", "category", "condition", "description", "image_url", "quantity", "available_quantity").
		Values(uuid.New(), eq.Name, eq.Category, eq.Condition, eq.Description, eq.ImageURL, eq.Quantity, eq.AvailableQuantity).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Equipment{}, err
	}
	var created model.Equipment
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Equipment{}, errs.ErrDuplicateName
		}
		r.log.Error("CreateEquipment", zap.String("q", query), zap.Any("args", args))
		return model.Equipment{}, err
	}
	return created, nil
}

func (r *repository) GetEquipment(ctx context.Context, equipmentUid string) (model.Equipment, error) {
	query, args, err := qb.Select("*").
		From(equipmentTableName).
		Where(sq.Eq{"equipment_uid": equipmentUid}).
		ToSql()
	if err != nil {
		return model.Equipment{}, err
	}
	var eq model.Equipment
	if err := r.db.GetContext(ctx, &eq, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Equipment{}, errs.ErrNotFound
		}
		return model.Equipment{}, err
	}
	return eq, nil
}

func (r *repository) ListEquipment(ctx context.Context, filter model.EquipmentFilter) (model.ListEquipment, error) {
	q := qb.Select("*").
		From(equipmentTableName).
		OrderBy("created_at desc")

	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Condition != "" {
		q = q.Where(sq.Eq{"condition": filter.Condition})
	}
	if filter.Search != "" {
		pattern := fmt.Sprint("%", filter.Search, "%")
		q = q.Where(sq.Or{sq.ILike{"name": pattern}, sq.ILike{"description": pattern}})
	}
	if filter.AvailableOnly {
		q = q.Where(sq.Gt{"available_quantity": 0})
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListEquipment{}, err
	}
	r.log.Debug("ListEquipment", zap.String("query", query), zap.Any("args", args))

	var items []model.Equipment
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListEquipment{}, err
	}

	return model.ListEquipment{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

func (r *repository) UpdateEquipment(ctx context.Context, equipmentUid string, upd model.UpdateEquipmentRequest) (model.Equipment, error) {
	q := qb.Update(equipmentTableName).
		Where(sq.Eq{"equipment_uid": equipmentUid}).
		Suffix("returning *")

	set := false
	if upd.Name != nil {
		q, set = q.Set("name", *upd.Name), true
	}
	if upd.Category != nil {
		q, set = q.Set("category", *upd.Category), true
	}
	if upd.Condition != nil {
		q, set = q.Set("condition", *upd.Condition), true
	}
	if upd.Description != nil {
		q, set = q.Set("description", *upd.Description), true
	}
	if upd.ImageURL != nil {
		q, set = q.Set("image_url", *upd.ImageURL), true
	}
	if !set {
		return model.Equipment{}, errors.Wrap(errs.ErrValidation, "no fields to update")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Equipment{}, err
	}
	var eq model.Equipment
	if err := r.db.GetContext(ctx, &eq, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Equipment{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Equipment{}, errs.ErrDuplicateName
		}
		return model.Equipment{}, err
	}
	return eq, nil
}

// AdjustCapacity rewrites both counters under the same row lock the approve
// path takes, so an admin edit cannot interleave with a reservation.
func (r *repository) AdjustCapacity(ctx context.Context, equipmentUid string, quantity, available int) (model.Equipment, error) {
	if err := model.ValidateCapacity(quantity, available); err != nil {
		return model.Equipment{}, err
	}
	var eq model.Equipment
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		locked, err := getEquipmentForUpdate(ctx, tx, sq.Eq{"equipment_uid": equipmentUid})
		if err != nil {
			return err
		}
		locked.Quantity = quantity
		locked.AvailableQuantity = available

		query, args, err := qb.Update(equipmentTableName).
			Set("quantity", locked.Quantity).
			Set("available_quantity", locked.AvailableQuantity).
			Where(sq.Eq{"id": locked.ID}).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &eq, query, args...)
	})
	if err != nil {
		return model.Equipment{}, err
	}
	return eq, nil
}

func (r *repository) DeleteEquipment(ctx context.Context, equipmentUid string) error {
	query, args, err := qb.Delete(equipmentTableName).
		Where(sq.Eq{"equipment_uid": equipmentUid}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListCategories(ctx context.Context) ([]string, error) {
	query, _, err := qb.Select("distinct category").
		From(equipmentTableName).
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, err
	}
	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) EquipmentStatistics(ctx context.Context) (model.EquipmentStatistics, error) {
	q := `
	select count(*)                                          as total_items,
	       coalesce(sum(quantity), 0)                        as total_units,
	       coalesce(sum(available_quantity), 0)              as available_units,
	       coalesce(sum(quantity - available_quantity), 0)   as on_loan_units
	from equipment`
	var stats model.EquipmentStatistics
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.EquipmentStatistics{}, err
	}
	return stats, nil
}
