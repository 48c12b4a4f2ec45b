package repository

import (
	"errors"
	"strings"

	apperrors "hotelops/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	sqlStateExclusionViolation = "23P01"
	sqlStateUniqueViolation    = "23505"
	sqlStateCheckViolation     = "23514"
	sqlStateSerialization      = "40001"
	sqlStateDeadlock           = "40P01"

	constraintNoOverlap     = "reservations_no_overlap"
	constraintOneCheckedIn  = "reservations_one_checked_in"
	constraintValidRange    = "reservations_valid_range"
	constraintRoomNumberKey = "idx_rooms_room_number"
)

// sqlState lấy SQLSTATE và tên constraint từ lỗi của pgx hoặc lib/pq
func sqlState(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	return "", ""
}

// translateError chuyển lỗi ràng buộc của Postgres thành lỗi nghiệp vụ.
// Hai transaction tranh cùng phòng: bên thua nhận ROOM_UNAVAILABLE.
func translateError(err error, message string) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return err
	}

	code, constraint := sqlState(err)
	switch code {
	case sqlStateExclusionViolation, sqlStateSerialization, sqlStateDeadlock:
		return apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable, apperrors.ErrRoomUnavailable.Message, err)
	case sqlStateUniqueViolation:
		switch {
		case constraint == constraintOneCheckedIn:
			return apperrors.NewAppError(apperrors.ErrCodeRoomOccupied, apperrors.ErrRoomOccupied.Message, err)
		case constraint == constraintRoomNumberKey || strings.Contains(constraint, "room_number"):
			return apperrors.NewAppError(apperrors.ErrCodeRoomNumberTaken, apperrors.ErrRoomNumberTaken.Message, err)
		}
	case sqlStateCheckViolation:
		if constraint == constraintValidRange {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidDateRange, apperrors.ErrInvalidDateRange.Message, err)
		}
	}
	return apperrors.Wrap(err, message)
}
