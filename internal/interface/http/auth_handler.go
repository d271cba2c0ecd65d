package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/brickforge/brickforge-api/internal/application"
	"github.com/brickforge/brickforge-api/pkg/response"
	"github.com/brickforge/brickforge-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup POST /api/signup {username, password}
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body carries no credentials.
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("signup bind failed")
		}
		response.Err(c, http.StatusBadRequest, application.MsgFieldsRequired)
		return
	}

	if err := h.Svc.Signup(c.Request.Context(), req.Username, req.Password); err != nil {
		writeError(c, h.Logger, err)
		return
	}

	response.OK(c, gin.H{"success": true, "message": "User created successfully"})
}

// Login POST /api/login {username, password}
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("login bind failed")
		}
		response.Err(c, http.StatusBadRequest, application.MsgFieldsRequired)
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}

	response.OK(c, gin.H{
		"success":  true,
		"userId":   res.UserID,
		"username": res.Username,
		"message":  "Login successful",
	})
}
