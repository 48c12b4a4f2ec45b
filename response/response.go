package response

import (
	"net/http"

	apperrors "hotelops/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Error      string      `json:"error,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// Created trả về 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Tạo thành công",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:  0,
		Mess:  "Lỗi server",
		Error: string(apperrors.KindInternal),
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:  0,
		Mess:  "Chưa xác thực",
		Error: string(apperrors.ErrCodeUnauthorized),
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code:  0,
		Mess:  "Không có quyền truy cập",
		Error: string(apperrors.ErrCodeUnauthorized),
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code:  0,
		Mess:  message,
		Error: string(apperrors.KindNotFound),
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:  0,
		Mess:  message,
		Error: string(apperrors.ErrCodeValidation),
	})
}

// StatusFor ánh xạ loại lỗi sang HTTP status. Conflict trả 400 theo hợp đồng
// với client hiện có.
func StatusFor(err *apperrors.AppError) int {
	switch err.Kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindValidation, apperrors.KindConflict:
		return http.StatusBadRequest
	}
	switch err.Code {
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// FromError trả về response tương ứng với lỗi; lỗi không phải AppError là lỗi server
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	status := StatusFor(appErr)
	message := appErr.Message
	if status == http.StatusInternalServerError {
		message = "Lỗi server"
	}
	c.JSON(status, Response{
		Code:  0,
		Mess:  message,
		Error: string(appErr.Code),
	})
}
