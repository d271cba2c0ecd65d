package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/brickforge/brickforge-api/internal/application"
	"github.com/brickforge/brickforge-api/internal/domain/entity"
	"github.com/brickforge/brickforge-api/pkg/response"
	"github.com/brickforge/brickforge-api/pkg/validation"
)

type BuildHandler struct {
	Svc    *application.BuildService
	Logger *logrus.Logger
}

func NewBuildHandler(svc *application.BuildService, logger *logrus.Logger) *BuildHandler {
	return &BuildHandler{Svc: svc, Logger: logger}
}

type saveRequest struct {
	UserID string         `json:"userId"`
	Name   string         `json:"name"`
	Bricks []entity.Brick `json:"bricks"`
}

// buildPayload is the build document shape shared by save/history/load.
func buildPayload(b *entity.Build) gin.H {
	return gin.H{
		"id":        b.ID,
		"userId":    b.UserID,
		"name":      b.Name,
		"createdAt": b.CreatedAt,
		"bricks":    b.Bricks,
	}
}

// Save POST /api/save {userId, name?, bricks}
func (h *BuildHandler) Save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The save contract documents only 401 and 500; an undecodable body
		// falls into the unhandled-failure bucket.
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("save bind failed")
		}
		response.Err(c, http.StatusInternalServerError, application.MsgInternal)
		return
	}

	b, err := h.Svc.Save(c.Request.Context(), application.Principal{UserID: req.UserID}, req.Name, req.Bricks)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}

	response.OK(c, gin.H{"success": true, "id": b.ID})
}

// History GET /api/history/:userId
// Also bound to /api/history so a missing path param reports the missing id
// instead of the router's default 404.
func (h *BuildHandler) History(c *gin.Context) {
	p := application.Principal{UserID: c.Param("userId")}

	builds, err := h.Svc.History(c.Request.Context(), p)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}

	out := make([]gin.H, 0, len(builds))
	for _, b := range builds {
		out = append(out, buildPayload(b))
	}
	response.OK(c, out)
}

// Load GET /api/load/:id
func (h *BuildHandler) Load(c *gin.Context) {
	b, err := h.Svc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, buildPayload(b))
}
