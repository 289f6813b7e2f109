package jobparse

import "context"

// CalendarEvent is an event extracted from free text.
type CalendarEvent struct {
	Name         string   `json:"name" validate:"required"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Duration     string   `json:"duration"`
	Participants []string `json:"participants"`
}

// EventParser turns free text into a CalendarEvent.
type EventParser interface {
	ParseEvent(ctx context.Context, text string) (*CalendarEvent, error)
}
