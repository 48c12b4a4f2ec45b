package middleware

import (
	"hotelops/errors"
	"hotelops/response"
	"hotelops/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication. secret rỗng thì bỏ qua kiểm tra.
func AuthMiddleware(secret string, roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		claims, err := services.ParseStaffToken(c.GetHeader("Authorization"), secret)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}

func hasRole(role int, roles []int) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// ErrorHandler render lỗi được gắn bằng c.Error nếu handler chưa ghi response
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if errors.IsAppError(err) {
			response.FromError(c, err)
			return
		}
		response.ServerError(c)
	}
}
