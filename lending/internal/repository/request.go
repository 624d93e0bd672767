package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/campuskit/lending-service/lending/internal/errs"
	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const requestReturning = `returning id, request_uid, requester_id, equipment_id, quantity, status, request_date, required_date, return_date, purpose, coalesce(notes, '') as notes, coalesce(denial_reason, '') as denial_reason, approver_id, approved_date, returned_date`

// requestViewColumns is the read projection shared by all request listings.
var requestViewColumns = []string{
	"er.id", "er.request_uid", "er.requester_id", "er.equipment_id", "er.quantity",
	"er.status", "er.request_date", "er.required_date", "er.return_date",
	"er.purpose", "coalesce(er.notes, '') as notes", "coalesce(er.denial_reason, '') as denial_reason",
	"er.approver_id", "er.approved_date", "er.returned_date",
	"u.full_name as requester_name", "u.role as requester_role",
	"e.equipment_uid", "e.name as equipment_name", "e.category as equipment_category",
	"e.condition as equipment_condition",
	"approver.full_name as approver_name",
}

func requestViewBuilder() sq.SelectBuilder {
	return qb.Select(requestViewColumns...).
		From(requestTableName + " er").
		Join(usersTableName + " u on u.id = er.requester_id").
		Join(equipmentTableName + " e on e.id = er.equipment_id").
		LeftJoin(usersTableName + " approver on approver.id = er.approver_id")
}

// CreateRequest inserts a PENDING row. Stock is checked against the current
// availability as an advisory pre-check but is NOT reserved here: approval
// is the reservation event, and multiple pending requests may together
// exceed stock until approvals resolve them first-approved-first-served.
func (r *repository) CreateRequest(ctx context.Context, req model.CreateRequestRequest, requesterID int) (model.EquipmentRequest, error) {
	eq, err := r.GetEquipment(ctx, req.EquipmentUid)
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	if eq.AvailableQuantity < req.Quantity {
		return model.EquipmentRequest{}, errors.Wrapf(errs.ErrInsufficientStock,
			"only %d available", eq.AvailableQuantity)
	}

	var returnDate *time.Time
	if req.ReturnDate != nil {
		returnDate = &req.ReturnDate.Time
	}
	query, args, err := qb.Insert(requestTableName).
		Columns("request_uid", "requester_id", "equipment_id", "quantity", "status", "required_date", "return_date", "purpose").
		Values(uuid.New(), requesterID, eq.ID, req.Quantity, model.StatusPending, req.RequiredDate.Format(time.DateOnly), returnDate, req.Purpose).
		Suffix(requestReturning).
		ToSql()
	if err != nil {
		return model.EquipmentRequest{}, err
	}

	var created model.EquipmentRequest
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.EquipmentRequest{}, errs.ErrDuplicatePending
		}
		r.log.Error("CreateRequest", zap.String("q", query), zap.Any("args", args))
		return model.EquipmentRequest{}, err
	}
	return created, nil
}

func (r *repository) GetRequest(ctx context.Context, requestUid string) (model.RequestView, error) {
	query, args, err := requestViewBuilder().
		Where(sq.Eq{"er.request_uid": requestUid}).
		ToSql()
	if err != nil {
		return model.RequestView{}, err
	}
	var view model.RequestView
	if err := r.db.GetContext(ctx, &view, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RequestView{}, errs.ErrNotFound
		}
		return model.RequestView{}, err
	}
	return view, nil
}

// ListRequests returns requests newest first. The ordering is a contract
// observed by the UI, not a convenience.
func (r *repository) ListRequests(ctx context.Context, filter model.RequestFilter) (model.ListRequests, error) {
	q := requestViewBuilder().OrderBy("er.request_date desc")

	if filter.Status != "" {
		q = q.Where(sq.Eq{"er.status": filter.Status})
	}
	if filter.EquipmentUid != "" {
		q = q.Where(sq.Eq{"e.equipment_uid": filter.EquipmentUid})
	}
	if filter.Requester != "" {
		q = q.Where(sq.Eq{"u.username": filter.Requester})
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListRequests{}, err
	}
	r.log.Debug("ListRequests", zap.String("query", query), zap.Any("args", args))

	var items []model.RequestView
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListRequests{}, err
	}
	return model.ListRequests{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

func (r *repository) ListByRequester(ctx context.Context, username string, status model.Status) ([]model.RequestView, error) {
	q := requestViewBuilder().
		Where(sq.Eq{"u.username": username}).
		OrderBy("er.request_date desc")
	if status != "" {
		q = q.Where(sq.Eq{"er.status": status})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.RequestView
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) RequestStatistics(ctx context.Context) (model.RequestStatistics, error) {
	q := `
	select count(*)                                                  as total_requests,
	       count(*) filter (where status = 'PENDING')                as pending,
	       count(*) filter (where status = 'APPROVED')               as approved,
	       count(*) filter (where status = 'DENIED')                 as denied,
	       count(*) filter (where status = 'CANCELLED')              as cancelled,
	       count(*) filter (where status = 'RETURNED')               as returned
	from equipment_requests`
	var stats model.RequestStatistics
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.RequestStatistics{}, err
	}
	return stats, nil
}

// getRequestForUpdate loads a request row under an exclusive row lock, so
// the read-check-write of a transition is atomic with respect to any other
// transition on the same request.
func getRequestForUpdate(ctx context.Context, tx *sqlx.Tx, requestUid string) (model.EquipmentRequest, error) {
	query, args, err := qb.Select("id", "request_uid", "requester_id", "equipment_id", "quantity", "status",
		"request_date", "required_date", "return_date", "purpose",
		"coalesce(notes, '') as notes", "coalesce(denial_reason, '') as denial_reason",
		"approver_id", "approved_date", "returned_date").
		From(requestTableName).
		Where(sq.Eq{"request_uid": requestUid}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	var req model.EquipmentRequest
	if err := tx.GetContext(ctx, &req, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.EquipmentRequest{}, errs.ErrNotFound
		}
		return model.EquipmentRequest{}, err
	}
	return req, nil
}

// getEquipmentForUpdate locks the equipment row; every mutation of
// available_quantity goes through this lock so two approvals of the last
// unit cannot both succeed.
func getEquipmentForUpdate(ctx context.Context, tx *sqlx.Tx, pred sq.Eq) (model.Equipment, error) {
	query, args, err := qb.Select("*").
		From(equipmentTableName).
		Where(pred).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Equipment{}, err
	}
	var eq model.Equipment
	if err := tx.GetContext(ctx, &eq, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Equipment{}, errs.ErrNotFound
		}
		return model.Equipment{}, err
	}
	return eq, nil
}

func saveAvailable(ctx context.Context, tx *sqlx.Tx, eq model.Equipment) error {
	query, args, err := qb.Update(equipmentTableName).
		Set("available_quantity", eq.AvailableQuantity).
		Where(sq.Eq{"id": eq.ID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// ApproveRequest is the single point where inventory is decremented. The
// request row and the equipment row are both locked before the
// check-and-decrement, so concurrent approvals of the same last unit
// serialize: exactly one succeeds, the other observes the decremented stock
// and fails with ErrInsufficientStock while its request stays PENDING.
func (r *repository) ApproveRequest(ctx context.Context, requestUid string, approverID int, notes string) (model.EquipmentRequest, error) {
	var approved model.EquipmentRequest
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		req, err := getRequestForUpdate(ctx, tx, requestUid)
		if err != nil {
			return err
		}
		if err := req.Transition(model.StatusApproved); err != nil {
			return err
		}
		eq, err := getEquipmentForUpdate(ctx, tx, sq.Eq{"id": req.EquipmentID})
		if err != nil {
			return err
		}
		if err := eq.Reserve(req.Quantity); err != nil {
			return err
		}
		if err := saveAvailable(ctx, tx, eq); err != nil {
			return err
		}

		query, args, err := qb.Update(requestTableName).
			Set("status", model.StatusApproved).
			Set("approver_id", approverID).
			Set("approved_date", sq.Expr("now()")).
			Set("notes", notes).
			Where(sq.Eq{"id": req.ID}).
			Suffix(requestReturning).
			ToSql()
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &approved, query, args...)
	})
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	return approved, nil
}

// DenyRequest transitions PENDING -> DENIED. Reservation never happened for
// a pending request, so inventory is untouched.
func (r *repository) DenyRequest(ctx context.Context, requestUid string, approverID int, reason string) (model.EquipmentRequest, error) {
	var denied model.EquipmentRequest
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		req, err := getRequestForUpdate(ctx, tx, requestUid)
		if err != nil {
			return err
		}
		if err := req.Transition(model.StatusDenied); err != nil {
			return err
		}
		query, args, err := qb.Update(requestTableName).
			Set("status", model.StatusDenied).
			Set("approver_id", approverID).
			Set("approved_date", sq.Expr("now()")).
			Set("denial_reason", reason).
			Where(sq.Eq{"id": req.ID}).
			Suffix(requestReturning).
			ToSql()
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &denied, query, args...)
	})
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	return denied, nil
}

// CancelRequest marks a still-PENDING request CANCELLED. The row is kept
// rather than deleted so the full request history survives for reporting.
// Only the owning requester may cancel, and only while PENDING: an approved
// loan has committed stock and must go through return instead.
func (r *repository) CancelRequest(ctx context.Context, requestUid string, requesterID int) (model.EquipmentRequest, error) {
	var cancelled model.EquipmentRequest
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		req, err := getRequestForUpdate(ctx, tx, requestUid)
		if err != nil {
			return err
		}
		if req.RequesterID != requesterID {
			return errors.Wrap(errs.ErrForbidden, "only own requests can be cancelled")
		}
		if err := req.Transition(model.StatusCancelled); err != nil {
			return err
		}
		query, args, err := qb.Update(requestTableName).
			Set("status", model.StatusCancelled).
			Where(sq.Eq{"id": req.ID}).
			Suffix(requestReturning).
			ToSql()
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &cancelled, query, args...)
	})
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	return cancelled, nil
}

// ReturnRequest closes an APPROVED loan and releases its units back to
// stock, clamped at the total quantity.
func (r *repository) ReturnRequest(ctx context.Context, requestUid string) (model.EquipmentRequest, error) {
	var returned model.EquipmentRequest
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		req, err := getRequestForUpdate(ctx, tx, requestUid)
		if err != nil {
			return err
		}
		if err := req.Transition(model.StatusReturned); err != nil {
			return err
		}
		eq, err := getEquipmentForUpdate(ctx, tx, sq.Eq{"id": req.EquipmentID})
		if err != nil {
			return err
		}
		eq.Release(req.Quantity)
		if err := saveAvailable(ctx, tx, eq); err != nil {
			return err
		}

		query, args, err := qb.Update(requestTableName).
			Set("status", model.StatusReturned).
			Set("returned_date", sq.Expr("now()")).
			Where(sq.Eq{"id": req.ID}).
			Suffix(requestReturning).
			ToSql()
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &returned, query, args...)
	})
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	return returned, nil
}
