package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blissful-abodes/middleware"
	"blissful-abodes/models"
	"blissful-abodes/services"
	"blissful-abodes/stores"
	"blissful-abodes/utils"
)

type registerPayload struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
}

type loginPayload struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type AuthController struct {
	Identity *services.IdentityService
	Sessions *services.SessionService
}

func NewAuthController(identity *services.IdentityService, sessions *services.SessionService) *AuthController {
	return &AuthController{Identity: identity, Sessions: sessions}
}

// Home (GET /)
func (ac *AuthController) Home(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"page": "home", "hotel": "Blissful Abodes"})
}

// ShowRegister (GET /register)
func (ac *AuthController) ShowRegister(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"page": "register", "roles": []string{models.RoleGuest, models.RoleStaff, models.RoleAdmin}})
}

// Register (POST /register) creates the account and sends the caller to the
// login page. A duplicate email re-shows the form as an error.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	_, err := ac.Identity.Register(c.Request.Context(), payload.Name, payload.Email, payload.Password, payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrDuplicateEmail):
			utils.JSONError(c, http.StatusConflict, "Email already registered")
		case errors.Is(err, services.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "Please fill all details")
		case errors.Is(err, services.ErrInvalidRole):
			utils.JSONError(c, http.StatusBadRequest, "Unknown role")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create account")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin (GET /login)
func (ac *AuthController) ShowLogin(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"page": "login"})
}

// Login (POST /login) authenticates, establishes the session cookie and
// redirects to the dashboard.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := ac.Identity.Authenticate(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	session, err := ac.Sessions.Establish(c.Request.Context(), user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to establish session")
		return
	}

	maxAge := int(session.ExpiresAt.Sub(session.CreatedAt).Seconds())
	c.SetCookie(middleware.SessionCookie, session.Token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout (GET /logout) clears the session and the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		_ = ac.Sessions.Clear(c.Request.Context(), token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Dashboard (GET /dashboard) routes by role: staff and admin land on their
// panels, guests get the generic dashboard view.
func (ac *AuthController) Dashboard(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	switch session.Role {
	case models.RoleAdmin:
		c.Redirect(http.StatusFound, "/admin")
	case models.RoleStaff:
		c.Redirect(http.StatusFound, "/staff")
	default:
		kind, message := ac.Sessions.PopFlash(c.Request.Context(), session.Token)
		utils.JSONSuccess(c, http.StatusOK, gin.H{
			"page":       "dashboard",
			"name":       session.Name,
			"email":      session.Email,
			"role":       session.Role,
			"flash":      message,
			"flash_kind": kind,
		})
	}
}
