package notification

import (
	"fmt"
	"time"

	"hotelops/constants"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Event là sự kiện vòng đời gửi qua /ws
type Event struct {
	Type          string    `json:"type"`
	Action        string    `json:"action"`
	RoomID        uint      `json:"roomId"`
	ReservationID uint      `json:"reservationId,omitempty"`
	IssueID       uint      `json:"issueId,omitempty"`
	Status        string    `json:"status,omitempty"`
	Message       string    `json:"message"`
	At            time.Time `json:"at"`
}

type EventBuilder struct {
	event Event
}

func NewEventBuilder(action string, roomID uint) *EventBuilder {
	return &EventBuilder{
		event: Event{
			Type:   constants.LifecycleEventType,
			Action: action,
			RoomID: roomID,
			At:     time.Now().UTC(),
		},
	}
}

func (b *EventBuilder) WithReservation(id uint, status string) *EventBuilder {
	b.event.ReservationID = id
	b.event.Status = status
	return b
}

func (b *EventBuilder) WithIssue(id uint) *EventBuilder {
	b.event.IssueID = id
	return b
}

func (b *EventBuilder) WithMessage(message string) *EventBuilder {
	b.event.Message = message
	return b
}

func (b *EventBuilder) Event() Event {
	return b.event
}

func (b *EventBuilder) Build() (string, error) {
	data, err := json.Marshal(b.event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
