package middlewares

import (
	"github.com/gin-gonic/gin"
)

// WSAuth ใช้ตรวจสอบ JWT จากทั้ง query และ header
// (browser websocket ใส่ header เองไม่ได้ เลยรับ ?token= ด้วย)
func WSAuth(users UserFinder, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr = bearerToken(c)
		}
		if !resolve(c, users, secret, tokenStr) {
			return
		}
		c.Next()
	}
}
