package controllers

import (
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/resp"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/services"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Orders *services.OrderService }

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// ===== Create Order =====

// POST /api/order/create-order
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return
	}
	order, err := oc.Orders.Create(c.Request.Context(), utils.CurrentUserID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Order placed successfully", "newOrder", order)
}

// ===== Status =====

type updateStatusReq struct {
	Status string `json:"status"`
}

// PUT /api/order/status/:id (admin)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return
	}
	order, err := oc.Orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Status updated", "order", order.View())
}

// ===== Listing =====

// GET /api/order/all-order (admin)
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "All orders", "data", orders)
}

// GET /api/order/my-orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Orders.ListForUser(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Your orders", "data", orders)
}
