package middlewares

import (
	"context"
	"errors"
	"strings"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/resp"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserFinder loads a user without the password hash.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// resolve ตรวจ token แล้วโหลด user; เขียน response เองถ้าไม่ผ่าน
func resolve(c *gin.Context, users UserFinder, secret, tokenStr string) bool {
	if tokenStr == "" {
		resp.Unauthorized(c, "Unauthorized")
		return false
	}

	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		resp.Unauthorized(c, "Invalid token")
		return false
	}

	user, err := users.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "User not found")
			return false
		}
		resp.Error(c, apperr.Internal(err))
		return false
	}

	utils.SetCurrentUser(c, user)
	return true
}

// Protect ใช้ตรวจ bearer token และแนบ user เข้า context
func Protect(users UserFinder, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolve(c, users, secret, bearerToken(c)) {
			return
		}
		c.Next()
	}
}

// RequireRole must run after Protect.
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := utils.CurrentUser(c)
		if u == nil || u.Role != role {
			resp.Forbidden(c, "Access denied")
			return
		}
		c.Next()
	}
}
