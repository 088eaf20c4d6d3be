package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

// RBAC allows the request through only when the role injected by Auth is in
// the allowed set. It is a pure predicate over already-verified claims:
// no I/O, no token parsing. A miss yields ErrForbidden (403), distinct from
// Auth's 401.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
