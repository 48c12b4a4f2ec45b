package dto

import (
	"time"

	"hotelops/constants"
	"hotelops/models"
)

func formatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func ToRoomResponse(room models.Room) RoomResponse {
	features := []string(room.Features)
	if features == nil {
		features = []string{}
	}
	return RoomResponse{
		ID:              room.ID,
		RoomNumber:      room.RoomNumber,
		RoomType:        room.RoomType,
		Floor:           room.Floor,
		Capacity:        room.Capacity,
		Price:           room.Price,
		Features:        features,
		Description:     room.Description,
		IsOnMaintenance: room.IsOnMaintenance,
		CreatedAt:       room.CreatedAt,
		UpdatedAt:       room.UpdatedAt,
	}
}

func ToRoomResponses(rooms []models.Room) []RoomResponse {
	list := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		list = append(list, ToRoomResponse(room))
	}
	return list
}

func ToReservationResponse(r models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID,
		RoomID:         r.RoomID,
		CustomerID:     r.CustomerID,
		StartDate:      formatDate(r.StartDate),
		EndDate:        formatDate(r.EndDate),
		Nights:         r.Nights(),
		NumberOfGuests: r.NumberOfGuests,
		Price:          r.Price,
		Status:         r.Status,
		Note:           r.Note,
		CancelReason:   r.CancelReason,
		CheckedInAt:    r.CheckedInAt,
		CheckedOutAt:   r.CheckedOutAt,
		CancelledAt:    r.CancelledAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func ToReservationResponses(list []models.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, ToReservationResponse(r))
	}
	return result
}

func ToIssueResponse(issue models.MaintenanceIssue, today time.Time) MaintenanceIssueResponse {
	return MaintenanceIssueResponse{
		ID:                      issue.ID,
		RoomID:                  issue.RoomID,
		Description:             issue.Description,
		ReportedDate:            formatDate(issue.ReportedDate),
		EstimatedCompletionDate: formatDatePtr(issue.EstimatedCompletionDate),
		ResolvedDate:            formatDatePtr(issue.ResolvedDate),
		ResolutionNote:          issue.ResolutionNote,
		Overdue:                 issue.IsOverdue(today),
		CreatedAt:               issue.CreatedAt,
	}
}

func ToIssueResponses(issues []models.MaintenanceIssue, today time.Time) []MaintenanceIssueResponse {
	result := make([]MaintenanceIssueResponse, 0, len(issues))
	for _, issue := range issues {
		result = append(result, ToIssueResponse(issue, today))
	}
	return result
}

func ToCustomerResponse(c models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func ToCustomerResponses(list []models.Customer) []CustomerResponse {
	result := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		result = append(result, ToCustomerResponse(c))
	}
	return result
}
