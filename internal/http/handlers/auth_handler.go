// README: Auth handlers for register/login/reset-password.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Castanheira1/leopardo-api/internal/auth"
	"github.com/Castanheira1/leopardo-api/internal/modules/account"
	"github.com/Castanheira1/leopardo-api/internal/types"
)

type AuthHandler struct {
	accounts *account.Service
	issuer   *auth.Issuer
}

func NewAuthHandler(accounts *account.Service, issuer *auth.Issuer) *AuthHandler {
	return &AuthHandler{accounts: accounts, issuer: issuer}
}

type registerReq struct {
	Registration string `json:"registration"`
	Password     string `json:"password"`
	IsAdmin      bool   `json:"is_admin"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	a, err := h.accounts.Register(c.Request.Context(), account.RegisterCommand{
		Registration: req.Registration,
		Password:     req.Password,
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{
		"account_id":   a.ID,
		"registration": a.Registration,
		"is_admin":     a.IsAdmin,
	})
}

type loginReq struct {
	Registration string `json:"registration"`
	Password     string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	a, err := h.accounts.Authenticate(c.Request.Context(), req.Registration, req.Password)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	token, expiresAt, err := h.issuer.Issue(c.Request.Context(), a.ID, a.IsAdmin)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
		"is_admin":   a.IsAdmin,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing account id")
		return
	}
	if err := h.accounts.ResetPassword(c.Request.Context(), types.ID(id)); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"reset": true})
}
