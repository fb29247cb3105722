package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrResolveActorQueryIsNotConstructed = errors.New(
	"ResolveActorQuery must be created via NewResolveActorQuery constructor",
)

const invalidCredentials = "could not validate credentials"

// ResolveActorQuery turns a bearer token into the actor it authenticates.
type ResolveActorQuery struct {
	token string

	guard guard.ConstructorGuard
}

func NewResolveActorQuery(token string) (ResolveActorQuery, error) {
	if token == "" {
		return ResolveActorQuery{}, errs.NewUnauthenticatedError("not authenticated")
	}
	return ResolveActorQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveActorQuery) Token() string {
	return q.token
}

func (q ResolveActorQuery) Validate() error {
	return q.guard.Validate(ErrResolveActorQueryIsNotConstructed)
}

// ResolveActorQueryHandler verifies the token and reloads the account, so
// role changes and deleted accounts take effect before the token expires.
type ResolveActorQueryHandler struct {
	tokens ports.TokenIssuer
	db     *gorm.DB
}

func NewResolveActorQueryHandler(tokens ports.TokenIssuer, db *gorm.DB) ResolveActorQueryHandler {
	return ResolveActorQueryHandler{tokens: tokens, db: db}
}

func (h ResolveActorQueryHandler) Handle(ctx context.Context, query ResolveActorQuery) (user.Actor, error) {
	if err := query.Validate(); err != nil {
		return user.Actor{}, err
	}

	claims, err := h.tokens.Parse(ctx, query.Token())
	if err != nil {
		return user.Actor{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, email, role
		FROM users
		WHERE id = ?
	`, claims.UserID.Bytes()).Rows()
	if err != nil {
		return user.Actor{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return user.Actor{}, err
		}
		return user.Actor{}, errs.NewUnauthenticatedError(invalidCredentials)
	}

	var id uuid.UUID
	var actor user.Actor
	var role string
	if err = rows.Scan(&id, &actor.Email, &role); err != nil {
		return user.Actor{}, err
	}

	if actor.UserID, err = kernel.UUIDFromGoogle(id); err != nil {
		return user.Actor{}, err
	}
	if actor.Role, err = user.ParseRole(role); err != nil {
		return user.Actor{}, errs.NewUnauthenticatedErrorWithCause(invalidCredentials, err)
	}

	return actor, nil
}
