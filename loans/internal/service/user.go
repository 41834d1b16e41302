package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/report"
	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Me resolves the session to its stored user, creating it on first login.
func (s *Service) Me(ctx context.Context, sess auth.Session) (model.User, error) {
	if sess.Profile.Email == "" {
		return model.User{}, errs.ErrUnauthenticated
	}
	u, err := s.repo.GetUserByEmail(ctx, sess.Profile.Email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.User{}, errs.Backend("get user", err)
	}

	role, err := model.ParseRole(strings.ToUpper(sess.Profile.Role))
	if err != nil {
		role = model.RoleTechnician
	}
	u, err = s.repo.CreateUser(ctx, model.User{
		Name:  sess.Profile.Name,
		Email: sess.Profile.Email,
		Role:  role,
	})
	if errors.Is(err, errs.ErrConflict) {
		// created concurrently by another request
		u, err = s.repo.GetUserByEmail(ctx, sess.Profile.Email)
	}
	if err != nil {
		return model.User{}, errs.Backend("create user", err)
	}
	s.log.Info("user provisioned", zap.String("email", u.Email), zap.String("role", string(u.Role)))
	return u, nil
}

// UpdateMe changes contact metadata only.
func (s *Service) UpdateMe(ctx context.Context, sess auth.Session, upd model.ProfileUpdate) (model.User, error) {
	u, err := s.Me(ctx, sess)
	if err != nil {
		return model.User{}, err
	}
	if upd.Phone != nil {
		u.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.JobTitle != nil {
		u.JobTitle = strings.TrimSpace(*upd.JobTitle)
	}
	if upd.Department != nil {
		u.Department = strings.TrimSpace(*upd.Department)
	}
	u, err = s.repo.UpdateUser(ctx, u)
	if err != nil {
		return model.User{}, lookupErr("update user", err)
	}
	return u, nil
}

type UserList struct {
	Items []model.User     `json:"items"`
	Stats report.UserStats `json:"stats"`
}

func (s *Service) ListUsers(ctx context.Context, c filter.UserCriteria) (UserList, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return UserList{}, errs.Backend("list users", err)
	}
	return UserList{
		Items: filter.Users(users, c),
		Stats: report.NewUserStats(users),
	}, nil
}
