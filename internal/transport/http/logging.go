package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// registerLogging emits one entry per request. Bodies are never logged:
// import uploads carry customer data.
func registerLogging(e *echo.Echo, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			userID, tenantID := "anonymous", ""
			if user, ok := CurrentUser(c); ok && user != nil {
				userID = user.ID.String()
				if user.TenantID != nil {
					tenantID = user.TenantID.String()
				}
			}

			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Int64("latency_ms", v.Latency.Milliseconds()),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("user_id", userID),
			}
			if tenantID != "" {
				fields = append(fields, zap.String("tenant_id", tenantID))
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}

			level := zapcore.InfoLevel
			switch {
			case v.Status >= 500:
				level = zapcore.ErrorLevel
			case v.Status >= 400:
				level = zapcore.WarnLevel
			}
			logger.Log(level, "request", fields...)
			return nil
		},
	}))
}
