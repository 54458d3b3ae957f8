package profiles

import (
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-profile-server/internal/utils"
)

// Experience is one work history entry.
type Experience struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    *string `json:"location,omitempty"`
	From        Date    `json:"from"`
	To          *Date   `json:"to,omitempty"`
	Current     bool    `json:"current"`
	Description *string `json:"description,omitempty"`
}

func (e Experience) EntryID() string { return e.ID }

func (e Experience) clone() Experience {
	e.Location = clonePtr(e.Location)
	e.To = clonePtr(e.To)
	e.Description = clonePtr(e.Description)
	return e
}

// Education is one education history entry.
type Education struct {
	ID           string  `json:"_id"`
	School       string  `json:"school"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"fieldofstudy"`
	From         Date    `json:"from"`
	To           *Date   `json:"to,omitempty"`
	Current      bool    `json:"current"`
	Description  *string `json:"description,omitempty"`
}

func (e Education) EntryID() string { return e.ID }

func (e Education) clone() Education {
	e.To = clonePtr(e.To)
	e.Description = clonePtr(e.Description)
	return e
}

// ExperienceInput is the request body for adding a work history entry.
type ExperienceInput struct {
	Title       string  `json:"title" validate:"required"`
	Company     string  `json:"company" validate:"required"`
	Location    *string `json:"location"`
	From        *Date   `json:"from" validate:"required"`
	To          *Date   `json:"to"`
	Current     bool    `json:"current"`
	Description *string `json:"description"`
}

func (in ExperienceInput) entry(newID func() string) Experience {
	return Experience{
		ID:          newID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        utils.Value(in.From),
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
}

// EducationInput is the request body for adding an education history entry.
type EducationInput struct {
	School       string  `json:"school" validate:"required"`
	Degree       string  `json:"degree" validate:"required"`
	FieldOfStudy string  `json:"fieldofstudy" validate:"required"`
	From         *Date   `json:"from" validate:"required"`
	To           *Date   `json:"to"`
	Current      bool    `json:"current"`
	Description  *string `json:"description"`
}

func (in EducationInput) entry(newID func() string) Education {
	return Education{
		ID:           newID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         utils.Value(in.From),
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
}

func newEntryID() string {
	return uuid.New().String()
}

// Date is a calendar date that accepts "2006-01-02" or RFC 3339 in JSON.
type Date struct {
	time.Time
}

const dateOnly = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &time.ParseError{Layout: dateOnly, Value: s, Message: ": date must be a string"}
	}
	s = s[1 : len(s)-1]
	if t, err := time.Parse(dateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	d.Time = t.UTC()
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.UTC().MarshalJSON()
}
