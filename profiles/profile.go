// Package profiles holds the developer profile record, the sparse merge used to
// create or update it, and the editors for its ordered work and education history.
package profiles

import (
	"time"

	"github.com/jrsteele09/go-profile-server/internal/utils"
	"github.com/jrsteele09/go-profile-server/users"
)

// Profile is owned by exactly one user. Optional fields are nil until supplied,
// so "never set" and "set to empty" stay distinguishable in the stored document.
type Profile struct {
	UserID         string       `json:"user"`
	Company        *string      `json:"company,omitempty"`
	Website        *string      `json:"website,omitempty"`
	Location       *string      `json:"location,omitempty"`
	Status         *string      `json:"status,omitempty"`
	Skills         []string     `json:"skills,omitempty"`
	Bio            *string      `json:"bio,omitempty"`
	GithubUsername *string      `json:"githubusername,omitempty"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Social         *Social      `json:"social,omitempty"`
	CreatedAt      time.Time    `json:"date"`
}

type Social struct {
	YouTube   *string `json:"youtube,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

// Clone returns a deep copy so callers can mutate without touching stored state.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Company = clonePtr(p.Company)
	c.Website = clonePtr(p.Website)
	c.Location = clonePtr(p.Location)
	c.Status = clonePtr(p.Status)
	c.Bio = clonePtr(p.Bio)
	c.GithubUsername = clonePtr(p.GithubUsername)
	c.Skills = utils.CloneSlice(p.Skills)
	c.Experience = make([]Experience, len(p.Experience))
	for i, e := range p.Experience {
		c.Experience[i] = e.clone()
	}
	c.Education = make([]Education, len(p.Education))
	for i, e := range p.Education {
		c.Education[i] = e.clone()
	}
	if p.Social != nil {
		c.Social = &Social{
			YouTube:   clonePtr(p.Social.YouTube),
			Twitter:   clonePtr(p.Social.Twitter),
			Facebook:  clonePtr(p.Social.Facebook),
			LinkedIn:  clonePtr(p.Social.LinkedIn),
			Instagram: clonePtr(p.Social.Instagram),
		}
	}
	return &c
}

// WithUser is a profile with its owner's public details attached.
type WithUser struct {
	*Profile
	User *users.Summary `json:"user"`
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	return utils.Ptr(*v)
}
