package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/inventario-app/inventario/internal/authz"
	authmw "github.com/inventario-app/inventario/internal/middleware/auth"
)

type Deps struct {
	ProductHandler *ProductHandler
	AuthHandler    *AuthHandler
	AuthMW         *authmw.Middleware

	// Health probes; either may be nil in tests.
	DB    *gorm.DB
	Redis *redis.Client
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return ready(c, d) })

	auth := e.Group("/auth")
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout, d.AuthMW.RequireAuth)
	auth.GET("/me", d.AuthHandler.Me, d.AuthMW.RequireAuth)
	auth.GET("/status", d.AuthHandler.Status)

	read := d.AuthMW.RequirePermission(authz.ActionRead)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.List, read)
	products.GET("/search/:query", d.ProductHandler.Search, read)
	products.GET("/:id", d.ProductHandler.Get, read)

	admin := products.Group("", d.AuthMW.RequireAdmin)
	admin.POST("", d.ProductHandler.Create)
	admin.PUT("/:id", d.ProductHandler.Update)
	admin.DELETE("/:id", d.ProductHandler.Delete)
}

func ready(c echo.Context, d *Deps) error {
	ctx := c.Request().Context()

	if d.DB != nil {
		sqlDB, err := d.DB.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Ping(ctx).Err(); err != nil {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}
