package errors

import (
	"errors"
	"fmt"
)

// ErrorKind phân loại lỗi cho tầng HTTP
type ErrorKind string

const (
	KindNotFound   ErrorKind = "NotFound"
	KindValidation ErrorKind = "Validation"
	KindConflict   ErrorKind = "Conflict"
	KindInternal   ErrorKind = "Internal"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Not found
	ErrCodeRoomNotFound        ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeReservationNotFound ErrorCode = "RESERVATION_NOT_FOUND"
	ErrCodeIssueNotFound       ErrorCode = "ISSUE_NOT_FOUND"
	ErrCodeCustomerNotFound    ErrorCode = "CUSTOMER_NOT_FOUND"

	// Validation errors
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField    ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat    ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"

	// Conflict errors
	ErrCodeRoomUnavailable           ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeInvalidTransition         ErrorCode = "INVALID_TRANSITION"
	ErrCodeReservationNotEditable    ErrorCode = "RESERVATION_NOT_EDITABLE"
	ErrCodeAlreadyResolved           ErrorCode = "ALREADY_RESOLVED"
	ErrCodeRoomOccupied              ErrorCode = "ROOM_OCCUPIED"
	ErrCodeRoomNumberTaken           ErrorCode = "ROOM_NUMBER_TAKEN"
	ErrCodeRoomHasActiveReservations ErrorCode = "ROOM_HAS_ACTIVE_RESERVATIONS"

	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

var kinds = map[ErrorCode]ErrorKind{
	ErrCodeRoomNotFound:        KindNotFound,
	ErrCodeReservationNotFound: KindNotFound,
	ErrCodeIssueNotFound:       KindNotFound,
	ErrCodeCustomerNotFound:    KindNotFound,

	ErrCodeValidation:       KindValidation,
	ErrCodeRequiredField:    KindValidation,
	ErrCodeInvalidFormat:    KindValidation,
	ErrCodeInvalidDateRange: KindValidation,

	ErrCodeRoomUnavailable:           KindConflict,
	ErrCodeInvalidTransition:         KindConflict,
	ErrCodeReservationNotEditable:    KindConflict,
	ErrCodeAlreadyResolved:           KindConflict,
	ErrCodeRoomOccupied:              KindConflict,
	ErrCodeRoomNumberTaken:           KindConflict,
	ErrCodeRoomHasActiveReservations: KindConflict,
}

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Kind    ErrorKind
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is so khớp theo Code, để errors.Is(err, ErrRoomUnavailable) hoạt động
// với mọi AppError cùng mã.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	kind, ok := kinds[code]
	if !ok {
		kind = KindInternal
	}
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError lấy AppError từ error (kể cả khi bị wrap)
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra mã lỗi
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// Wrap bọc lỗi DB thành AppError nội bộ
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if IsAppError(err) {
		return err
	}
	return NewAppError(ErrCodeDBError, message, err)
}

var (
	// Sentinels dùng với errors.Is
	ErrRoomNotFound           = NewAppError(ErrCodeRoomNotFound, "room not found", nil)
	ErrReservationNotFound    = NewAppError(ErrCodeReservationNotFound, "reservation not found", nil)
	ErrIssueNotFound          = NewAppError(ErrCodeIssueNotFound, "maintenance issue not found", nil)
	ErrCustomerNotFound       = NewAppError(ErrCodeCustomerNotFound, "customer not found", nil)
	ErrInvalidDateRange       = NewAppError(ErrCodeInvalidDateRange, "start date must be before end date", nil)
	ErrRoomUnavailable        = NewAppError(ErrCodeRoomUnavailable, "room is not available for the requested dates", nil)
	ErrInvalidTransition      = NewAppError(ErrCodeInvalidTransition, "invalid status transition", nil)
	ErrReservationNotEditable = NewAppError(ErrCodeReservationNotEditable, "only pending reservations can be edited", nil)
	ErrAlreadyResolved        = NewAppError(ErrCodeAlreadyResolved, "maintenance issue already resolved", nil)
	ErrRoomOccupied           = NewAppError(ErrCodeRoomOccupied, "room is still occupied", nil)
	ErrRoomNumberTaken        = NewAppError(ErrCodeRoomNumberTaken, "room number already exists", nil)
	ErrRoomHasActiveBookings  = NewAppError(ErrCodeRoomHasActiveReservations, "room has active reservations", nil)
)
