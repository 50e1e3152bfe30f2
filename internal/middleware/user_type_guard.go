package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextのuser_typeを確認します。

// 社員だけ許可。
func EmployeeGuard() echo.MiddlewareFunc {
	return userTypeGuard("employee")
}

// パートナーだけ許可。
func PartnerGuard() echo.MiddlewareFunc {
	return userTypeGuard("partner")
}

func userTypeGuard(want string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawType := c.Get(CtxUserTypeKey)
			userType, ok := rawType.(string)
			if !ok || userType == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if userType != want {
				return c.JSON(http.StatusForbidden, errorJSON(want+" only"))
			}

			return next(c)
		}
	}
}
