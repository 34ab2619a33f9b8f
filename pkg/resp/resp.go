package resp

import (
	"log/slog"
	"net/http"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"
	"github.com/gin-gonic/gin"
)

// envelope: {"message": msg, key: data}
func body(msg string, kv []any) gin.H {
	h := gin.H{"message": msg}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			h[k] = kv[i+1]
		}
	}
	return h
}

func OK(c *gin.Context, msg string, kv ...any) {
	c.JSON(http.StatusOK, body(msg, kv))
}

func Created(c *gin.Context, msg string, kv ...any) {
	c.JSON(http.StatusCreated, body(msg, kv))
}

func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": msg})
}

// Error writes err using its apperr kind. Internal causes are logged, never sent.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind.Status() >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"kind", kind.String(),
			"error", err,
		)
	}
	c.AbortWithStatusJSON(kind.Status(), gin.H{"message": apperr.Message(err)})
}
