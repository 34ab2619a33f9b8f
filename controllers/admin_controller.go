package controllers

import (
	"fmt"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/resp"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

// GET /api/admin/users
func (ac *AdminController) Users(c *gin.Context) {
	users, err := ac.Admin.Users(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "All users fetched successfully", "users", users)
}

// GET /api/admin/stats
func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.Admin.DashboardStats(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Dashboard stats fetched", "stats", stats)
}

// GET /api/admin/activity
func (ac *AdminController) Activity(c *gin.Context) {
	feed, err := ac.Admin.RecentActivity(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Recent activity fetched", "activity", feed)
}

// GET /api/admin/waitlist
func (ac *AdminController) Waitlist(c *gin.Context) {
	entries, err := ac.Admin.Waitlist(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Waitlist entries fetched", "waitlist", entries)
}

type waitlistMailReq struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// POST /api/admin/waitlist/send
func (ac *AdminController) SendWaitlist(c *gin.Context) {
	var req waitlistMailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return
	}
	n, err := ac.Admin.SendWaitlistEmail(c.Request.Context(), req.Subject, req.Body)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, fmt.Sprintf("Email queued for %d waitlist subscribers", n), "recipients", n)
}
