package jobparse

import "strings"

// FormatVacancy formats a vacancy for display.
// Uses the title as heading, falling back to the URL. Empty fields are omitted.
func FormatVacancy(v *Vacancy) string {
	if v == nil {
		return ""
	}

	header := v.Title
	if header == "" {
		header = v.URL
	}

	var b strings.Builder
	b.WriteString("## " + header + "\n")
	writeField(&b, "URL", v.URL)
	writeField(&b, "Role", v.Role)
	writeField(&b, "Location", v.Location)
	writeField(&b, "Level", v.Level)
	writeField(&b, "Salary", v.Salary)
	writeField(&b, "Deadline", v.Deadline)
	if v.Description != "" {
		b.WriteString("\n" + v.Description + "\n")
	}
	writeList(&b, "Responsibilities", v.Responsibilities)
	writeList(&b, "Requirements", v.Requirements)

	return strings.TrimRight(b.String(), "\n")
}

// FormatVacancies formats vacancies separated by blank lines.
func FormatVacancies(vs []*Vacancy) string {
	if len(vs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, FormatVacancy(v))
	}

	return strings.Join(parts, "\n\n")
}

// FormatEvent formats a calendar event for display.
func FormatEvent(e *CalendarEvent) string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("## " + e.Name + "\n")
	writeField(&b, "Date", e.Date)
	writeField(&b, "Time", e.Time)
	writeField(&b, "Duration", e.Duration)
	if len(e.Participants) > 0 {
		writeField(&b, "Participants", strings.Join(e.Participants, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label + ": " + value + "\n")
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + label + ":\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
}
