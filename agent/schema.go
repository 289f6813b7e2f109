package agent

import "github.com/fwojciec/jobparse"

func stringField(desc string) *jobparse.Schema {
	return &jobparse.Schema{Type: jobparse.TypeString, Description: desc}
}

func listField(desc string) *jobparse.Schema {
	return &jobparse.Schema{
		Type:        jobparse.TypeArray,
		Description: desc,
		Items:       &jobparse.Schema{Type: jobparse.TypeString},
	}
}

// object builds an object schema that requires every property, in the
// given key order.
func object(keys []string, props map[string]*jobparse.Schema) *jobparse.Schema {
	return &jobparse.Schema{
		Type:       jobparse.TypeObject,
		Properties: props,
		Required:   keys,
	}
}

// VacancySchema is the reply shape requested for a Vacancy. The URL is
// supplied by the caller and is not part of the model's reply.
var VacancySchema = object(
	[]string{"title", "role", "location", "deadline", "description", "responsibilities", "requirements", "salary", "level"},
	map[string]*jobparse.Schema{
		"title":            stringField("Organization and job title"),
		"role":             stringField("Role, at most three words"),
		"location":         stringField("City"),
		"deadline":         stringField("Application deadline as dd/mm/yyyy"),
		"description":      stringField("Short description of the position"),
		"responsibilities": listField("Responsibilities of the position"),
		"requirements":     listField("Requirements for candidates"),
		"salary":           stringField("Salary or pay range"),
		"level":            stringField("Seniority or grade level"),
	},
)

// AnnouncementSchema is the reply shape requested for a VacancyAnnouncement.
var AnnouncementSchema = object(
	[]string{"title", "role", "location", "deadline", "description", "requirements", "level"},
	map[string]*jobparse.Schema{
		"title":        stringField("Organization and job title"),
		"role":         stringField("Role, at most three words"),
		"location":     stringField("City"),
		"deadline":     stringField("Application deadline as dd/mm/yyyy"),
		"description":  stringField("Short description of the position"),
		"requirements": listField("Requirements for candidates"),
		"level":        stringField("Seniority or grade level"),
	},
)

// EventSchema is the reply shape requested for a CalendarEvent.
var EventSchema = object(
	[]string{"name", "date", "time", "duration", "participants"},
	map[string]*jobparse.Schema{
		"name":         stringField("Event name"),
		"date":         stringField("Event date"),
		"time":         stringField("Start time"),
		"duration":     stringField("Duration"),
		"participants": listField("Names of the participants"),
	},
)
