package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barangaylink/records-system/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	msg := rbacMessage(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, msg)
			}
			return next(c)
		}
	}
}

// RequireAdmin gates a route to admins only.
func RequireAdmin() echo.MiddlewareFunc {
	return RBAC(domain.RoleAdmin)
}

// RequireStaff gates a route to staff and admins.
func RequireStaff() echo.MiddlewareFunc {
	return RBAC(domain.RoleAdmin, domain.RoleStaff)
}

func rbacMessage(allowed map[domain.Role]struct{}) string {
	if _, staff := allowed[domain.RoleStaff]; staff {
		return "staff or admin access required"
	}
	return "admin access required"
}
