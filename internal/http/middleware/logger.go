package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrimBoxKey is the context key handlers set to the "l,t,r,b" box of a
// successful trim so it lands in the request log.
const TrimBoxKey = "trim_box"

func Logger(logger *zap.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(params gin.LogFormatterParams) string {
		fields := []zap.Field{
			zap.String("method", params.Method),
			zap.String("path", params.Path),
			zap.Int("status", params.StatusCode),
			zap.Int("body_size", params.BodySize),
			zap.Duration("latency", params.Latency),
			zap.String("client_ip", params.ClientIP),
			zap.String("user_agent", params.Request.UserAgent()),
		}
		if box, ok := params.Keys[TrimBoxKey].(string); ok {
			fields = append(fields, zap.String(TrimBoxKey, box))
		}

		logger.Info("HTTP Request", fields...)
		return ""
	})
}
