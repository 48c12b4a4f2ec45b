package services

import (
	"fmt"
	"strings"

	"hotelops/errors"

	"github.com/dgrijalva/jwt-go"
)

// StaffClaims thông tin nhân viên lấy từ token
type StaffClaims struct {
	UserID uint
	Role   int
}

// ParseStaffToken kiểm tra chữ ký HS256 và lấy userinfo.userid, userinfo.role
func ParseStaffToken(tokenString, secret string) (*StaffClaims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Thiếu token", nil)
	}

	claimsMap := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claimsMap, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy role trong token", nil)
	}

	return &StaffClaims{UserID: uint(userID), Role: int(role)}, nil
}

// SignStaffToken tạo token cho nhân viên, dùng cho công cụ nội bộ và test
func SignStaffToken(userID uint, role int, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": userID,
			"role":   role,
		},
	})
	return token.SignedString([]byte(secret))
}
