package identity

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/kbukum/storefront/auth/password"
	"github.com/kbukum/storefront/auth/token"
	"github.com/kbukum/storefront/database"
	apperrors "github.com/kbukum/storefront/errors"
	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/observability"
	"github.com/kbukum/storefront/validation"
)

const resourceUser = "User"

// Sign-in outcomes recorded by observability.Metrics.SignIn.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Service implements the account operations.
type Service struct {
	db      *database.DB
	hasher  password.Hasher
	tokens  *token.Service
	metrics *observability.Metrics
	log     *logger.Logger
}

// NewService creates an identity service. metrics may be nil.
func NewService(db *database.DB, hasher password.Hasher, tokens *token.Service, metrics *observability.Metrics, log *logger.Logger) *Service {
	return &Service{
		db:      db,
		hasher:  hasher,
		tokens:  tokens,
		metrics: metrics,
		log:     log.WithComponent("identity"),
	}
}

// SignIn verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*Session, error) {
	ctx, span := observability.StartSpan(ctx, "identity.SignIn")
	defer span.End()

	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	user, err := s.byEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
			s.metrics.SignIn(ctx, OutcomeInvalid)
			return nil, apperrors.InvalidLogin()
		}
		s.metrics.SignIn(ctx, OutcomeError)
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	if err := s.hasher.Verify(req.Password, user.Password); err != nil {
		s.metrics.SignIn(ctx, OutcomeInvalid)
		s.log.WithContext(ctx).Warn("sign-in rejected", logger.Fields(logger.FieldUserID, user.ID))
		return nil, apperrors.InvalidLogin()
	}
	span.SetAttributes(attribute.String(observability.AttrUserID, user.ID))
	s.metrics.SignIn(ctx, OutcomeSuccess)
	return s.session(user)
}

// SignUp creates an account. A taken email yields ALREADY_EXISTS.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	ctx, span := observability.StartSpan(ctx, "identity.SignUp")
	defer span.End()

	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}
	user := &User{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: hash,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		observability.SetSpanError(ctx, err)
		return nil, database.FromDatabase(err, resourceUser, "")
	}
	s.log.WithContext(ctx).Info("user signed up", logger.Fields(logger.FieldUserID, user.ID))
	return s.session(user)
}

// UpdateProfile applies the non-empty fields of req to the user and issues a
// credential reflecting the new values.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req ProfileRequest) (*Session, error) {
	ctx, span := observability.StartSpan(ctx, "identity.UpdateProfile")
	defer span.End()
	span.SetAttributes(attribute.String(observability.AttrUserID, userID))

	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	user, err := s.byID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Email != "" {
		user.Email = normalizeEmail(req.Email)
	}
	if req.Password != "" {
		if user.Password, err = s.hash(req.Password); err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		observability.SetSpanError(ctx, err)
		return nil, database.FromDatabase(err, resourceUser, userID)
	}
	return s.session(user)
}

// ReplaceAll deletes every user and inserts users within tx. Plain-text
// passwords are hashed first.
func (s *Service) ReplaceAll(tx *gorm.DB, users []User) error {
	for i := range users {
		hash, err := s.hash(users[i].Password)
		if err != nil {
			return err
		}
		users[i].Password = hash
		users[i].Email = normalizeEmail(users[i].Email)
	}
	if err := tx.Where("1 = 1").Delete(&User{}).Error; err != nil {
		return database.FromDatabase(err, resourceUser, "")
	}
	if len(users) == 0 {
		return nil
	}
	if err := tx.Create(&users).Error; err != nil {
		return database.FromDatabase(err, resourceUser, "")
	}
	return nil
}

func (s *Service) byEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, database.FromDatabase(err, resourceUser, "")
	}
	return &u, nil
}

func (s *Service) byID(ctx context.Context, id string) (*User, error) {
	var u User
	err := gorm.ErrRecordNotFound
	if database.ValidID(id) {
		err = s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	}
	if err != nil {
		return nil, database.FromDatabase(err, resourceUser, id)
	}
	return &u, nil
}

func (s *Service) hash(plain string) (string, error) {
	hash, err := s.hasher.Hash(plain)
	switch {
	case errors.Is(err, password.ErrTooShort):
		return "", apperrors.Validation("Password is too short").WithDetail("field", "password").WithCause(err)
	case errors.Is(err, password.ErrTooLong):
		return "", apperrors.Validation("Password is too long").WithDetail("field", "password").WithCause(err)
	case err != nil:
		return "", apperrors.Internal(err)
	}
	return hash, nil
}

func (s *Service) session(u *User) (*Session, error) {
	raw, err := s.tokens.Issue(u.Identity())
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &Session{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin, Token: raw}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
