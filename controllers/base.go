package controllers

import (
	"strconv"
	"strings"

	apperrors "hotelops/errors"
	"hotelops/response"
	"hotelops/validator"

	"github.com/gin-gonic/gin"
)

// fail ghi lỗi vào context (để middleware log) và trả response tương ứng
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	response.FromError(c, err)
}

func paramID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, name+" không hợp lệ: "+raw, err)
	}
	return uint(id), nil
}

// bindJSON đọc body và validate theo tag `validate`
func bindJSON(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Dữ liệu không hợp lệ", err)
	}
	return validator.ValidateStruct(target)
}

func bindQuery(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindQuery(target); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Tham số không hợp lệ", err)
	}
	return validator.ValidateStruct(target)
}

// splitList nhận cả ?features=a&features=b lẫn ?features=a,b
func splitList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

func pageLimit(page, limit int, defaultLimit int) (int, int) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}
