package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// SessionMiddleware gán sessionId cho mỗi request (lấy từ header X-Session-ID
// hoặc sinh mới). sessionId là khóa của bộ lọc tìm phòng đã lưu trong redis
// (prefix last_filters:) và được ghi kèm mỗi dòng log request.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader(sessionHeader)
		if sessionId == "" {
			sessionId = uuid.NewString()
		}

		c.Set("sessionId", sessionId)

		// Trả lại header để client gửi kèm ở các lần tìm phòng sau
		c.Writer.Header().Set(sessionHeader, sessionId)

		c.Next()
	}
}
