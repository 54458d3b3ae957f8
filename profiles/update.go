package profiles

import (
	"github.com/jrsteele09/go-profile-server/internal/utils"
)

const skillsSeparator = ","

// Input is the create-or-update request body. A nil field was not supplied.
type Input struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status" validate:"required,min=1"`
	GithubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills" validate:"required,min=1"`

	YouTube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	LinkedIn  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
}

// Update is a sparse set of profile fields. Only non-nil fields are applied.
type Update struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         []string
	Social         *Social
}

// BuildUpdate turns request input into a sparse update. Skills are split on commas
// and trimmed, keeping order and duplicates. Social links are grouped into one
// object that is present when at least one link was supplied.
func BuildUpdate(in Input) Update {
	u := Update{
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Bio:            in.Bio,
		Status:         in.Status,
		GithubUsername: in.GithubUsername,
	}
	if in.Skills != nil {
		u.Skills = NormalizeSkills(*in.Skills)
	}
	if in.YouTube != nil || in.Twitter != nil || in.Facebook != nil || in.LinkedIn != nil || in.Instagram != nil {
		u.Social = &Social{
			YouTube:   in.YouTube,
			Twitter:   in.Twitter,
			Facebook:  in.Facebook,
			LinkedIn:  in.LinkedIn,
			Instagram: in.Instagram,
		}
	}
	return u
}

// NormalizeSkills splits a comma separated skill list into trimmed tags.
func NormalizeSkills(skills string) []string {
	return utils.SplitTrim(skills, skillsSeparator)
}

// IsEmpty reports whether the update would change nothing.
func (u Update) IsEmpty() bool {
	return u.Company == nil && u.Website == nil && u.Location == nil && u.Bio == nil &&
		u.Status == nil && u.GithubUsername == nil && u.Skills == nil && u.Social == nil
}

// ApplyTo merges u into p. Fields absent from u are left as they are. A supplied
// social object replaces the stored one as a whole.
func (u Update) ApplyTo(p *Profile) {
	setIfPresent(&p.Company, u.Company)
	setIfPresent(&p.Website, u.Website)
	setIfPresent(&p.Location, u.Location)
	setIfPresent(&p.Bio, u.Bio)
	setIfPresent(&p.Status, u.Status)
	setIfPresent(&p.GithubUsername, u.GithubUsername)
	if u.Skills != nil {
		p.Skills = utils.CloneSlice(u.Skills)
	}
	if u.Social != nil {
		p.Social = &Social{
			YouTube:   clonePtr(u.Social.YouTube),
			Twitter:   clonePtr(u.Social.Twitter),
			Facebook:  clonePtr(u.Social.Facebook),
			LinkedIn:  clonePtr(u.Social.LinkedIn),
			Instagram: clonePtr(u.Social.Instagram),
		}
	}
}

// NewProfile builds a profile for userID from exactly the supplied fields.
func (u Update) NewProfile(userID string) *Profile {
	p := &Profile{
		UserID:     userID,
		Experience: []Experience{},
		Education:  []Education{},
	}
	u.ApplyTo(p)
	return p
}

func setIfPresent(dst **string, v *string) {
	if v != nil {
		*dst = clonePtr(v)
	}
}
