package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/repository"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/user"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

const badCredentials = "Credenciales incorrectas."

type RegisterCommand struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Service struct {
	repo repository.UserRepository
	cost int
	log  logger.Logger
}

func NewService(repo repository.UserRepository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, cost: bcrypt.DefaultCost, log: log}
}

// Register stores a new user with a bcrypt hash of the password.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*user.User, error) {
	email := strings.TrimSpace(cmd.Email)
	if strings.TrimSpace(cmd.Name) == "" || email == "" || cmd.Password == "" {
		return nil, errs.Validation("Todos los campos son obligatorios.")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.fail(ctx, "find user", err)
	}
	if existing != nil {
		return nil, errs.Conflict("El correo ya está registrado.", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{Name: cmd.Name, Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, s.fail(ctx, "create user", err)
	}

	s.log.WithContext(ctx).Info("user registered", logger.Int64("user_id", u.ID))
	return u, nil
}

// Login checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*user.User, error) {
	if strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return nil, errs.Validation("Correo y contraseña requeridos.")
	}

	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(cmd.Email))
	if err != nil {
		return nil, s.fail(ctx, "find user", err)
	}
	if u == nil {
		return nil, errs.Unauthorized(badCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cmd.Password)); err != nil {
		s.log.WithContext(ctx).Warn("login rejected", logger.Int64("user_id", u.ID))
		return nil, errs.Unauthorized(badCredentials)
	}
	return u, nil
}

func (s *Service) fail(ctx context.Context, op string, err error) error {
	var cErr *errs.ConflictError
	if errors.As(err, &cErr) {
		return err
	}
	var sErr *errs.StoreError
	if !errors.As(err, &sErr) {
		err = errs.Store(op, err)
	}
	s.log.WithContext(ctx).Error(op+" failed", logger.Error(err))
	return err
}
