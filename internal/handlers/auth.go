package handlers

import (
	"errors"
	"net/http"

	"Staff/internal/auth"
	"Staff/internal/dto"
	"Staff/internal/service"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash_id"

// AuthHandler handles login, register, logout and the change-password flow.
type AuthHandler struct {
	sessions *auth.Store
	userSvc  *service.UserService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(sessions *auth.Store, userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{sessions: sessions, userSvc: userSvc}
}

// LoginForm renders the login page with any pending flash message.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"Title": "Login",
		"Flash": h.popFlash(c),
	})
}

// LoginSubmit checks credentials and establishes a session.
func (h *AuthHandler) LoginSubmit(c *gin.Context) {
	var form dto.LoginForm
	_ = c.ShouldBind(&form)

	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.setFlash(c, "Invalid username or password")
		} else {
			h.setFlash(c, "Login failed, please try again")
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if err := h.startSession(c, user.ID); err != nil {
		h.setFlash(c, "Login failed, please try again")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	c.Redirect(http.StatusSeeOther, "/employee_records")
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", gin.H{
		"Title": "Register",
		"Form":  dto.RegisterForm{},
	})
}

// RegisterSubmit creates the account and logs it straight in. A duplicate
// username re-renders the form with a message and leaves the existing account
// untouched.
func (h *AuthHandler) RegisterSubmit(c *gin.Context) {
	var form dto.RegisterForm
	_ = c.ShouldBind(&form)

	user, err := h.userSvc.Register(c.Request.Context(), form.Username, form.Password, form.Email, form.DisplayName)
	if err != nil {
		msg := "Registration failed, please try again"
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			msg = "That username is already taken"
		case errors.Is(err, service.ErrInvalidCredentials):
			msg = "Username and password are required"
		}
		form.Password = ""
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"Title": "Register",
			"Form":  form,
			"Error": msg,
		})
		return
	}
	if err := h.startSession(c, user.ID); err != nil {
		h.setFlash(c, "Registered, please log in")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	c.Redirect(http.StatusSeeOther, "/employee_records")
}

// Logout destroys the session and returns home.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.endSession(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// ChangePasswordForm renders the password form with any pending flash message.
func (h *AuthHandler) ChangePasswordForm(c *gin.Context) {
	c.HTML(http.StatusOK, "change_password.tmpl", gin.H{
		"Title": "Change Password",
		"Flash": h.popFlash(c),
	})
}

// ChangePasswordSubmit validates the form locally, re-checks the current
// password, persists the new hash and forces a re-login.
func (h *AuthHandler) ChangePasswordSubmit(c *gin.Context) {
	var form dto.ChangePasswordForm
	_ = c.ShouldBind(&form)

	if form.CurrentPassword == "" || form.NewPassword == "" {
		h.setFlash(c, "All fields are required")
		c.Redirect(http.StatusSeeOther, "/change_password")
		return
	}
	if form.NewPassword != form.ConfirmPassword {
		h.setFlash(c, "New passwords do not match")
		c.Redirect(http.StatusSeeOther, "/change_password")
		return
	}

	userID := auth.UserIDFromContext(c)
	err := h.userSvc.ChangePassword(c.Request.Context(), userID, form.CurrentPassword, form.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.setFlash(c, "Current password is incorrect")
		} else {
			h.setFlash(c, "Could not update password, please try again")
		}
		c.Redirect(http.StatusSeeOther, "/change_password")
		return
	}

	h.endSession(c)
	h.setFlash(c, "Password updated, please log in again")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) startSession(c *gin.Context, userID int64) error {
	sessionID, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.SetCookie(auth.SessionCookieName, sessionID, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	return nil
}

func (h *AuthHandler) endSession(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
}

func (h *AuthHandler) setFlash(c *gin.Context, msg string) {
	token, err := h.sessions.SetFlash(c.Request.Context(), msg)
	if err != nil {
		return
	}
	c.SetCookie(flashCookieName, token, 300, "/", "", false, true)
}

func (h *AuthHandler) popFlash(c *gin.Context) string {
	token, err := c.Cookie(flashCookieName)
	if err != nil || token == "" {
		return ""
	}
	msg := h.sessions.PopFlash(c.Request.Context(), token)
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return msg
}
