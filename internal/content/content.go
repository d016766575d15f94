// Package content holds the portfolio data served by the site: profile, CV,
// projects, technologies, info points and evangelist panels.
package content

import "github.com/Zachkp/personal-page/internal/timeline"

type Link struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

type Profile struct {
	Name       string   `json:"name" validate:"required"`
	Role       string   `json:"role" validate:"required"`
	Tagline    string   `json:"tagline" validate:"required"`
	Location   string   `json:"location" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phone,omitempty"`
	Links      []Link   `json:"links" validate:"dive"`
	Highlights []string `json:"highlights"`
}

type Personal struct {
	Name        string   `json:"name" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Nationality string   `json:"nationality" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"required"`
	Languages   []string `json:"languages"`
}

// Experience is one job on the CV timeline.
type Experience struct {
	Start   timeline.DateValue `json:"start" validate:"required"`
	End     timeline.DateValue `json:"end" validate:"required"`
	Company string             `json:"company" validate:"required"`
	Role    string             `json:"role" validate:"required"`
	Details []string           `json:"details"`
}

func (e Experience) StartDate() timeline.DateValue { return e.Start }

// Period is the formatted date range, e.g. "Jun 2019 - Present".
func (e Experience) Period() string { return timeline.FormatDateRange(e.Start, e.End) }

type Education struct {
	School string `json:"school" validate:"required"`
	Degree string `json:"degree" validate:"required"`
	Period string `json:"period" validate:"required"`
}

type Certification struct {
	School string `json:"school" validate:"required"`
	Degree string `json:"degree" validate:"required"`
	Period string `json:"period" validate:"required"`
}

type CV struct {
	Summary        string          `json:"summary" validate:"required"`
	Personal       Personal        `json:"personal"`
	Skills         []string        `json:"skills"`
	Experience     []Experience    `json:"experience" validate:"dive"`
	Education      []Education     `json:"education" validate:"dive"`
	Certifications []Certification `json:"certifications" validate:"dive"`
	Hobby          []string        `json:"hobby"`
}

type Project struct {
	Name                  string   `json:"name" validate:"required"`
	Year                  int      `json:"year"`
	ProjectTechnicallyLed bool     `json:"project_technically_led"`
	WasLLMUsed            bool     `json:"was_llm_used"`
	WasAgentsUsed         bool     `json:"was_agents_used"`
	Summary               string   `json:"summary" validate:"required"`
	Stack                 []string `json:"stack"`
	Impact                string   `json:"impact" validate:"required"`
	Icon                  string   `json:"icon" validate:"required"`
	BusinessDescription   string   `json:"business_description" validate:"required"`
	TechnicalDescription  string   `json:"technical_description" validate:"required"`
	Scope                 string   `json:"scope" validate:"required"`
	Highlights            []string `json:"highlights"`
}

// Technology is a tool or language placed on the technology timeline by the
// date it was first used.
type Technology struct {
	Name        string             `json:"name" validate:"required"`
	Start       timeline.DateValue `json:"start" validate:"required"`
	Description string             `json:"description" validate:"required"`
}

func (t Technology) StartDate() timeline.DateValue { return t.Start }

type InfoPoint struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	Offset int    `json:"offset"`
	Top    string `json:"top" validate:"required"`
}

type EvangelistPanel struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}
