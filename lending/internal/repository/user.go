package repository

import (
	"context"
	"database/sql"

	"github.com/campuskit/lending-service/lending/internal/errs"
	"github.com/campuskit/lending-service/lending/internal/model"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/google/uuid"
)

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("user_uid", "username", "email", "password", "full_name", "role").
		Values(uuid.New(), user.Username, user.Email, user.Password, user.FullName, user.Role).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var created model.User
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrDuplicateUser
		}
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) GetUser(ctx context.Context, username string) (model.User, error) {
	query, args, err := qb.Select("*").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
