package jobparse

import "context"

// Vacancy is the structured representation of a job posting.
type Vacancy struct {
	URL              string   `json:"url" validate:"required,url"`
	Title            string   `json:"title"`
	Role             string   `json:"role"`
	Location         string   `json:"location"`
	Deadline         string   `json:"deadline"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Salary           string   `json:"salary"`
	Level            string   `json:"level"`
}

// VacancyAnnouncement is a narrower vacancy record without responsibilities
// and salary.
type VacancyAnnouncement struct {
	URL          string   `json:"url" validate:"required,url"`
	Title        string   `json:"title"`
	Role         string   `json:"role"`
	Location     string   `json:"location"`
	Deadline     string   `json:"deadline"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Level        string   `json:"level"`
}

// VacancyParser turns raw posting text into a Vacancy.
type VacancyParser interface {
	// ParseVacancy extracts a Vacancy from text, using url as its identity.
	// Returns EPARSE wrapping the cause on any failure; never a partial record.
	ParseVacancy(ctx context.Context, url, text string) (*Vacancy, error)
}

// VacancyWriter persists parsed vacancies.
type VacancyWriter interface {
	// WriteVacancy stores v and returns where it was written.
	WriteVacancy(ctx context.Context, v *Vacancy) (string, error)
}
