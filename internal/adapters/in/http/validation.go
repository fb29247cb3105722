package http

import (
	"context"
	"errors"
	"strings"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// ActorResolver authenticates a bearer token.
type ActorResolver interface {
	Handle(ctx context.Context, query queries.ResolveActorQuery) (user.Actor, error)
}

type actorSlot struct {
	actor *user.Actor
}

type actorSlotKey struct{}

// NewRequestValidator checks every request described by the API document
// against it before the handler runs. Operations secured with bearerAuth are
// authenticated through resolver, and the actor is stored on the echo context.
// Requests for paths outside the document pass through untouched.
func NewRequestValidator(doc *openapi3.T, resolver ActorResolver) (echo.MiddlewareFunc, error) {
	doc.Servers = nil
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
			if input.SecuritySchemeName != "bearerAuth" {
				return errs.NewUnauthenticatedError("unsupported security scheme " + input.SecuritySchemeName)
			}
			token, ok := bearerToken(input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization))
			if !ok {
				return errs.NewUnauthenticatedError("not authenticated")
			}
			query, err := queries.NewResolveActorQuery(token)
			if err != nil {
				return err
			}
			actor, err := resolver.Handle(ctx, query)
			if err != nil {
				return err
			}
			if slot, ok := ctx.Value(actorSlotKey{}).(*actorSlot); ok {
				slot.actor = &actor
			}
			return nil
		},
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return err
			}

			slot := &actorSlot{}
			ctx := context.WithValue(req.Context(), actorSlotKey{}, slot)

			// ValidateRequest consumes the body and restores it on this copy.
			validated := req.WithContext(ctx)
			input := &openapi3filter.RequestValidationInput{
				Request:    validated,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(ctx, input); err != nil {
				return err
			}
			c.SetRequest(validated)

			if slot.actor != nil {
				c.Set(actorContextKey, *slot.actor)
			}
			return next(c)
		}
	}, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// actorFrom returns the authenticated caller of the request.
func actorFrom(c echo.Context) (user.Actor, error) {
	actor, ok := c.Get(actorContextKey).(user.Actor)
	if !ok {
		return user.Actor{}, errs.NewUnauthenticatedError("not authenticated")
	}
	return actor, nil
}

// BodyValidator adapts go-playground/validator to echo.
type BodyValidator struct {
	validate *validator.Validate
}

func NewBodyValidator() *BodyValidator {
	return &BodyValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *BodyValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return errs.NewValueIsInvalidErrorWithCause(fieldErrs[0].Field(), err)
		}
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}
