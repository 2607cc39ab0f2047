package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/domain"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// Principal represents the authenticated caller.
type Principal struct {
	ID    string
	Email string
	Role  domain.Role
}

// Authorize is the single gate every privileged operation runs first. A nil or
// incomplete principal fails closed as unauthenticated. With no allowed roles
// the gate only asserts authentication; otherwise the principal's role must be
// a member of the allow-list.
func Authorize(principal *Principal, allowed ...domain.Role) error {
	if principal == nil || principal.ID == "" || !principal.Role.Valid() {
		return apperrors.NewUnauthorized("authentication required")
	}
	if len(allowed) == 0 {
		return nil
	}
	for _, role := range allowed {
		if principal.Role == role {
			return nil
		}
	}
	return apperrors.NewForbidden("insufficient role")
}

// RequireRole returns a route guard enforcing the gate for the given roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		if err := Authorize(principal, allowed...); err != nil {
			return err
		}
		return c.Next()
	}
}

// MustPrincipal returns the principal or an unauthenticated failure.
func MustPrincipal(c *fiber.Ctx) (*Principal, error) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return principal, nil
}
