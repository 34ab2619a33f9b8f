package controllers

import (
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/resp"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/services"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct{ Auth *services.AuthService }

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /api/user/signup
func (a *AuthController) SignUp(c *gin.Context) {
	var req services.SignUpInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return
	}
	user, err := a.Auth.SignUp(c.Request.Context(), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "User created successfully", "user", user)
}

// POST /api/user/login, POST /api/admin/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return
	}
	token, user, err := a.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Login Successful", "user", user, "token", token)
}

// POST /api/user/waitlist
func (a *AuthController) JoinWaitlist(c *gin.Context) {
	var req services.WaitlistInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return
	}
	entry, err := a.Auth.JoinWaitlist(c.Request.Context(), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Successfully joined the waitlist", "entry", entry)
}

// GET /api/admin/verify-token (Protect + RequireRole ทำงานไปแล้ว)
func (a *AuthController) VerifyToken(c *gin.Context) {
	user, err := a.Auth.Profile(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Token is valid", "user", user)
}
