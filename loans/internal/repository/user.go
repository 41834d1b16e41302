package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var userColumns = []string{"id", "name", "email", "role", "phone", "job_title", "department", "created_at"}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := qb.Select(userColumns...).From(usersTableName).OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		return model.User{}, translate(err)
	}
	return u, nil
}

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().UTC()
	query, args, err := qb.Insert(usersTableName).
		Columns(userColumns...).
		Values(u.ID, u.Name, u.Email, u.Role, u.Phone, u.JobTitle, u.Department, u.CreatedAt).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return model.User{}, translate(err)
	}
	return u, nil
}

// UpdateUser never touches email.
func (r *repository) UpdateUser(ctx context.Context, u model.User) (model.User, error) {
	query, args, err := qb.Update(usersTableName).
		SetMap(map[string]interface{}{
			"name":       u.Name,
			"role":       u.Role,
			"phone":      u.Phone,
			"job_title":  u.JobTitle,
			"department": u.Department,
		}).
		Where(sq.Eq{"id": u.ID}).
		Suffix("RETURNING email, created_at").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&u.Email, &u.CreatedAt); err != nil {
		return model.User{}, translate(err)
	}
	return u, nil
}
