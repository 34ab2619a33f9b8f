package controllers

import (
	"strconv"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/resp"

	"github.com/gin-gonic/gin"
)

// paramID อ่าน :id; ถ้าไม่ใช่ตัวเลขตอบ 400 แล้วคืน false
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
