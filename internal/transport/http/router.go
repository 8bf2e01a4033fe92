package http

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// multipartSlack covers form boundaries and the non-file fields of an
// import upload.
const multipartSlack = 1 << 20

type RouterOptions struct {
	AllowOrigins []string
	// MaxUploadBytes is the import file limit. Zero disables the body cap.
	MaxUploadBytes int64
	Logger         *zap.Logger
}

func NewRouter(opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e.Use(middleware.RequestID())
	registerLogging(e, logger)
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	if opts.MaxUploadBytes > 0 {
		e.Use(middleware.BodyLimit(strconv.FormatInt(opts.MaxUploadBytes+multipartSlack, 10)))
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
		},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
		AllowCredentials: !slices.Contains(opts.AllowOrigins, "*"),
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
	return e
}
