package commands

import (
	"context"
	"log/slog"
	"time"

	"pawbook/internal/domain/user"
	reqdto "pawbook/internal/handler/dto/request"
	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/clock"
	"pawbook/internal/pkg/errs"
	"pawbook/internal/pkg/jwt"
	"pawbook/internal/pkg/password"
	"pawbook/internal/usecase/queries"
	"pawbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAccountInactive      = errs.New("account inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID uuid.UUID
	Token  string
}

// SignInNotifier sends the "new sign-in" email. Delivery is best effort and
// never fails a login.
type SignInNotifier interface {
	NotifySignIn(ctx context.Context, email, name string, at time.Time) error
}

type SignInRecorder interface {
	RecordSignIn(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	recorder   SignInRecorder
	notifier   SignInNotifier
	jwtService *jwt.Service
	pool       *pgxpool.Pool
	clock      clock.Clock
}

func NewAuthCommands(
	readStore queries.UserReadStore,
	recorder SignInRecorder,
	notifier SignInNotifier,
	jwtService *jwt.Service,
	pool *pgxpool.Pool,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		recorder:   recorder,
		notifier:   notifier,
		jwtService: jwtService,
		pool:       pool,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, ErrAccountInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	_, err = shared.RunInTx(ctx, a.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, a.recorder.RecordSignIn(ctx, tx, view.ID, now)
	})
	if err != nil {
		slog.Warn("failed to record sign-in", "user_id", view.ID, "error", err.Error())
	}

	if a.notifier != nil {
		if err := a.notifier.NotifySignIn(ctx, view.Email, view.Name, now); err != nil {
			slog.Warn("failed to send sign-in notification", "user_id", view.ID, "error", err.Error())
		}
	}

	return &LoginResult{UserID: view.ID, Token: token}, nil
}
