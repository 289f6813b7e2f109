package mock

import (
	"context"

	"github.com/fwojciec/jobparse"
)

var _ jobparse.VacancyParser = (*VacancyParser)(nil)

// VacancyParser is a mock implementation of jobparse.VacancyParser.
type VacancyParser struct {
	ParseVacancyFn func(ctx context.Context, url, text string) (*jobparse.Vacancy, error)
}

func (p *VacancyParser) ParseVacancy(ctx context.Context, url, text string) (*jobparse.Vacancy, error) {
	return p.ParseVacancyFn(ctx, url, text)
}

var _ jobparse.EventParser = (*EventParser)(nil)

// EventParser is a mock implementation of jobparse.EventParser.
type EventParser struct {
	ParseEventFn func(ctx context.Context, text string) (*jobparse.CalendarEvent, error)
}

func (p *EventParser) ParseEvent(ctx context.Context, text string) (*jobparse.CalendarEvent, error) {
	return p.ParseEventFn(ctx, text)
}

var _ jobparse.VacancyWriter = (*VacancyWriter)(nil)

// VacancyWriter is a mock implementation of jobparse.VacancyWriter.
type VacancyWriter struct {
	WriteVacancyFn func(ctx context.Context, v *jobparse.Vacancy) (string, error)
}

func (w *VacancyWriter) WriteVacancy(ctx context.Context, v *jobparse.Vacancy) (string, error) {
	return w.WriteVacancyFn(ctx, v)
}
