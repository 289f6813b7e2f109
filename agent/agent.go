// Package agent turns free text into typed records through schema-constrained
// completions and validates what the model returns.
package agent

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/jobparse"
	"github.com/go-playground/validator/v10"
)

// VacancyPrompt is the system instruction for vacancy extraction.
const VacancyPrompt = `Extract the following information from the vacancy announcement:
- Organization and title
- Role (max 3 words)
- Location (city)
- Level
- Salary
- Deadline (format: dd/mm/yyyy)
- List of responsibilities
- List of requirements

Return empty string if information is not available.`

// EventPrompt is the system instruction for calendar event extraction.
const EventPrompt = "Extract the event information from the text."

// Ensure implementations satisfy their interfaces at compile time.
var (
	_ jobparse.VacancyParser = (*VacancyParser)(nil)
	_ jobparse.EventParser   = (*EventParser)(nil)
)

// VacancyParser extracts vacancies with a structured completion.
type VacancyParser struct {
	completer jobparse.Completer
	validate  *validator.Validate
}

// NewVacancyParser creates a VacancyParser backed by the given completer.
func NewVacancyParser(completer jobparse.Completer) *VacancyParser {
	return &VacancyParser{
		completer: completer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ParseVacancy extracts a Vacancy from text. The url is attached to the
// record and validated along with the model's reply.
func (p *VacancyParser) ParseVacancy(ctx context.Context, url, text string) (*jobparse.Vacancy, error) {
	var v jobparse.Vacancy
	if err := complete(ctx, p.completer, p.validate, &jobparse.CompletionRequest{
		Name:   "vacancy",
		System: VacancyPrompt,
		User:   text,
		Schema: VacancySchema,
	}, &v, func() { v.URL = url }); err != nil {
		return nil, jobparse.WrapError(jobparse.EPARSE, err, "failed to parse vacancy")
	}
	return &v, nil
}

// ParseAnnouncement extracts the narrower VacancyAnnouncement from text.
func (p *VacancyParser) ParseAnnouncement(ctx context.Context, url, text string) (*jobparse.VacancyAnnouncement, error) {
	var a jobparse.VacancyAnnouncement
	if err := complete(ctx, p.completer, p.validate, &jobparse.CompletionRequest{
		Name:   "vacancy_announcement",
		System: VacancyPrompt,
		User:   text,
		Schema: AnnouncementSchema,
	}, &a, func() { a.URL = url }); err != nil {
		return nil, jobparse.WrapError(jobparse.EPARSE, err, "failed to parse vacancy")
	}
	return &a, nil
}

// EventParser extracts calendar events with a structured completion.
type EventParser struct {
	completer jobparse.Completer
	validate  *validator.Validate
}

// NewEventParser creates an EventParser backed by the given completer.
func NewEventParser(completer jobparse.Completer) *EventParser {
	return &EventParser{
		completer: completer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ParseEvent extracts a CalendarEvent from text.
func (p *EventParser) ParseEvent(ctx context.Context, text string) (*jobparse.CalendarEvent, error) {
	var e jobparse.CalendarEvent
	if err := complete(ctx, p.completer, p.validate, &jobparse.CompletionRequest{
		Name:   "calendar_event",
		System: EventPrompt,
		User:   text,
		Schema: EventSchema,
	}, &e, nil); err != nil {
		return nil, jobparse.WrapError(jobparse.EPARSE, err, "failed to parse event")
	}
	return &e, nil
}

// complete runs the request, decodes the reply into out, applies merge and
// validates the result.
func complete(ctx context.Context, c jobparse.Completer, v *validator.Validate, req *jobparse.CompletionRequest, out any, merge func()) error {
	if c == nil {
		return jobparse.Errorf(jobparse.EINVALID, "completer not configured")
	}

	reply, err := c.Complete(ctx, req)
	if err != nil {
		return err
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return jobparse.Errorf(jobparse.EPARSE, "empty model reply")
	}
	if err := json.Unmarshal([]byte(reply), out); err != nil {
		return jobparse.WrapError(jobparse.EPARSE, err, "invalid model reply")
	}

	if merge != nil {
		merge()
	}

	if err := v.Struct(out); err != nil {
		return jobparse.WrapError(jobparse.EINVALID, err, "validation failed")
	}
	return nil
}
