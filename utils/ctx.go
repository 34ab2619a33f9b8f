package utils

import (
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// SetCurrentUser is called by the auth middlewares once the token resolves.
func SetCurrentUser(c *gin.Context, u *entity.User) {
	c.Set(userKey, u)
}

func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

func CurrentUserID(c *gin.Context) uint {
	if u := CurrentUser(c); u != nil {
		return u.ID
	}
	return 0
}
