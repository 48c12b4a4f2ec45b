package dto

import "hotelops/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// PageQuery tham số phân trang chung, page bắt đầu từ 0
type PageQuery struct {
	Page  int `form:"page" validate:"gte=0,lte=100000"`
	Limit int `form:"limit" validate:"gte=0,lte=100"`
}
