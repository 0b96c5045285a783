package middleware

import (
	"errors"

	"seo-audit-backend/internal/delivery/http/response"
	"seo-audit-backend/pkg/apperror"
	"seo-audit-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Log
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				log.Warn("Request failed",
					zap.Int("status", appErr.Code),
					zap.String("request_id", c.GetString(requestIDKey)),
					zap.Error(appErr.Err),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose internal error details to clients.
		log.Error("Internal Server Error",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		internal := apperror.Internal(err)
		response.Error(c, internal.Code, internal.Message, nil)
	}
}
