package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/brickforge/brickforge-api/internal/application"
	"github.com/brickforge/brickforge-api/pkg/response"
)

// writeError is the single mapping from tagged error kinds to HTTP responses.
// Internal causes are logged here and never echoed to the client.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var appErr *application.Error
	if !errors.As(err, &appErr) {
		appErr = &application.Error{Kind: application.KindInternal, Message: application.MsgInternal}
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case application.KindValidation, application.KindConflict:
		status = http.StatusBadRequest
	case application.KindUnauthorized:
		status = http.StatusUnauthorized
	case application.KindNotFound:
		status = http.StatusNotFound
	case application.KindInternal:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
	}

	response.Err(c, status, appErr.Message)
}
