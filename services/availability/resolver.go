package availability

import (
	"sort"
	"time"

	"hotelops/constants"
	"hotelops/models"
)

// Occupancy mô tả reservation đang chiếm phòng
type Occupancy struct {
	ReservationID uint      `json:"reservationId"`
	CustomerID    uint      `json:"customerId"`
	Status        string    `json:"status"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
}

// MaintenanceInfo mô tả sự cố khiến phòng đang bảo trì
type MaintenanceInfo struct {
	IssueID                 uint       `json:"issueId"`
	Description             string     `json:"description"`
	EstimatedCompletionDate *time.Time `json:"estimatedCompletionDate"`
	ReportedDate            time.Time  `json:"reportedDate"`
	OpenIssues              int        `json:"openIssues"`
}

// Resolution là trạng thái đã tính của một phòng
type Resolution struct {
	Status      string           `json:"status"`
	Occupant    *Occupancy       `json:"occupant,omitempty"`
	Maintenance *MaintenanceInfo `json:"maintenance,omitempty"`
}

// ResolveStatus derives the status of room from its reservations and
// maintenance issues. Precedence: UnderMaintenance > Occupied > Available.
//
// asOf == nil means "right now": any unresolved issue puts the room under
// maintenance and only a CheckedIn reservation occupies it.
// With asOf set, an issue applies when it was open on that date and an
// active reservation covering the date occupies the room (CheckedIn wins over
// Pending). A CheckedIn guest still occupies the room on today's board even
// past the end date. For dates before today a CheckedOut reservation covering
// the date is reported as the historical occupant.
func ResolveStatus(room models.Room, reservations []models.Reservation, issues []models.MaintenanceIssue, asOf *time.Time, today time.Time) Resolution {
	today = DateOf(today)

	var day time.Time
	if asOf != nil {
		day = DateOf(*asOf)
	}

	applicable := make([]models.MaintenanceIssue, 0)
	for _, issue := range issues {
		if issue.RoomID != room.ID {
			continue
		}
		if asOf == nil && issue.IsOpen() || asOf != nil && issue.OpenOn(day) {
			applicable = append(applicable, issue)
		}
	}
	if len(applicable) > 0 {
		return maintenanceResolution(applicable)
	}

	var occupant *models.Reservation
	bestRank := 0
	for i := range reservations {
		r := &reservations[i]
		if r.RoomID != room.ID {
			continue
		}
		rank := occupancyRank(r, asOf != nil, day, today)
		if rank == 0 {
			continue
		}
		if occupant == nil || rank < bestRank || rank == bestRank && r.StartDate.Before(occupant.StartDate) {
			occupant = r
			bestRank = rank
		}
	}
	if occupant != nil {
		return occupiedResolution(occupant)
	}

	return Resolution{Status: constants.RoomStatusAvailable}
}

// ResolveRangeStatus tính trạng thái của phòng trên cả khoảng rng: bảo trì nếu
// có sự cố còn mở vào bất kỳ ngày nào trong khoảng, có khách nếu có reservation
// active giao với khoảng, còn lại là trống.
func ResolveRangeStatus(room models.Room, reservations []models.Reservation, issues []models.MaintenanceIssue, rng DateRange) Resolution {
	applicable := make([]models.MaintenanceIssue, 0)
	for _, issue := range issues {
		if issue.RoomID != room.ID || !DateOf(issue.ReportedDate).Before(rng.End) {
			continue
		}
		if issue.ResolvedDate == nil || DateOf(*issue.ResolvedDate).After(rng.Start) {
			applicable = append(applicable, issue)
		}
	}
	if len(applicable) > 0 {
		return maintenanceResolution(applicable)
	}

	if conflict := FindConflict(room.ID, rng, reservations, nil); conflict != nil {
		return occupiedResolution(conflict)
	}
	return Resolution{Status: constants.RoomStatusAvailable}
}

// sự cố được báo sớm nhất là sự cố đại diện
func maintenanceResolution(applicable []models.MaintenanceIssue) Resolution {
	sort.SliceStable(applicable, func(i, j int) bool {
		if applicable[i].ReportedDate.Equal(applicable[j].ReportedDate) {
			return applicable[i].ID < applicable[j].ID
		}
		return applicable[i].ReportedDate.Before(applicable[j].ReportedDate)
	})
	first := applicable[0]
	return Resolution{
		Status: constants.RoomStatusUnderMaintenance,
		Maintenance: &MaintenanceInfo{
			IssueID:                 first.ID,
			Description:             first.Description,
			EstimatedCompletionDate: first.EstimatedCompletionDate,
			ReportedDate:            first.ReportedDate,
			OpenIssues:              len(applicable),
		},
	}
}

func occupiedResolution(r *models.Reservation) Resolution {
	return Resolution{
		Status: constants.RoomStatusOccupied,
		Occupant: &Occupancy{
			ReservationID: r.ID,
			CustomerID:    r.CustomerID,
			Status:        r.Status,
			StartDate:     DateOf(r.StartDate),
			EndDate:       DateOf(r.EndDate),
		},
	}
}

// occupancyRank: 0 = không chiếm phòng, số nhỏ hơn được ưu tiên
func occupancyRank(r *models.Reservation, dated bool, day, today time.Time) int {
	if !dated {
		if r.Status == constants.ReservationStatusCheckedIn {
			return 1
		}
		return 0
	}

	covers := DateRange{Start: DateOf(r.StartDate), End: DateOf(r.EndDate)}.Contains(day)
	switch r.Status {
	case constants.ReservationStatusCheckedIn:
		if covers || day.Equal(today) {
			return 1
		}
	case constants.ReservationStatusPending:
		if covers {
			return 2
		}
	case constants.ReservationStatusCheckedOut:
		if covers && day.Before(today) {
			return 3
		}
	}
	return 0
}
