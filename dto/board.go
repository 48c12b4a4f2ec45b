package dto

// OccupantInfo thông tin khách đang chiếm phòng
type OccupantInfo struct {
	ReservationID uint   `json:"reservationId"`
	CustomerID    uint   `json:"customerId"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Status        string `json:"status"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}

type MaintenanceInfo struct {
	IssueID                 uint    `json:"issueId"`
	Description             string  `json:"description"`
	ReportedDate            string  `json:"reportedDate"`
	EstimatedCompletionDate *string `json:"estimatedCompletionDate"`
	OpenIssues              int     `json:"openIssues"`
}

// RoomStatusResponse phòng kèm trạng thái đã tính
type RoomStatusResponse struct {
	Room        RoomResponse     `json:"room"`
	Status      string           `json:"status"`
	Occupant    *OccupantInfo    `json:"occupant,omitempty"`
	Maintenance *MaintenanceInfo `json:"maintenance,omitempty"`
}

type BoardResponse struct {
	Date  string               `json:"date"`
	Rooms []RoomStatusResponse `json:"rooms"`
}

type CalendarDay struct {
	Date          string `json:"date"`
	Status        string `json:"status"`
	ReservationID *uint  `json:"reservationId,omitempty"`
	IssueID       *uint  `json:"issueId,omitempty"`
}

type RoomCalendarResponse struct {
	Room  RoomResponse  `json:"room"`
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}
