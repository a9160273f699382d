package domain

import (
	"strings"
	"time"
)

type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           string     `json:"_id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Profile Invariants:
// 1. Ownership: exactly one profile per user, keyed by User.ID.
// 2. Entries: Experience and Education ids are unique within the profile,
//    newest entry first.
// 3. Version increases by one on every successful write.
type Profile struct {
	ID             string       `json:"_id"`
	User           UserRef      `json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GitHubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `json:"skills"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"date"`
	Version        int64        `json:"-"`
}

// ProfileFields is the upsert input. Empty strings mean "not supplied".
type ProfileFields struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GitHubUsername string
	Skills         string
	Social         Social
}

// Validate checks the fields every upsert must carry.
func (f ProfileFields) Validate() error {
	var c Checker
	c.Required("status", f.Status, "Status is required")
	if len(SplitSkills(f.Skills)) == 0 {
		c.Add("skills", "Skill is required")
	}
	return c.Err()
}

// SplitSkills turns "go, sql,,docker" into [go sql docker].
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewProfile builds a profile for userID from the supplied fields only.
func NewProfile(id, userID string, f ProfileFields, now time.Time) *Profile {
	p := &Profile{
		ID:         id,
		User:       UserRef{ID: userID},
		Experience: []Experience{},
		Education:  []Education{},
		CreatedAt:  now,
	}
	p.Apply(f)
	return p
}

// Apply merges f into p: supplied fields replace, the rest are kept.
func (p *Profile) Apply(f ProfileFields) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.Company, f.Company)
	set(&p.Website, f.Website)
	set(&p.Location, f.Location)
	set(&p.Bio, f.Bio)
	set(&p.Status, f.Status)
	set(&p.GitHubUsername, f.GitHubUsername)
	if f.Skills != "" {
		p.Skills = SplitSkills(f.Skills)
	}
	set(&p.Social.YouTube, f.Social.YouTube)
	set(&p.Social.Twitter, f.Social.Twitter)
	set(&p.Social.Facebook, f.Social.Facebook)
	set(&p.Social.LinkedIn, f.Social.LinkedIn)
	set(&p.Social.Instagram, f.Social.Instagram)
}

// AddExperience inserts e at the front. e.ID must already be set.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = append([]Experience{e}, p.Experience...)
}

// RemoveExperience deletes the entry with id or returns ErrExperienceNotFound.
func (p *Profile) RemoveExperience(id string) error {
	for i, e := range p.Experience {
		if e.ID == id {
			p.Experience = append(p.Experience[:i:i], p.Experience[i+1:]...)
			return nil
		}
	}
	return ErrExperienceNotFound
}

func (p *Profile) AddEducation(e Education) {
	p.Education = append([]Education{e}, p.Education...)
}

// RemoveEducation filters out every entry with id. Unknown ids are a no-op;
// the return value reports whether anything was removed.
func (p *Profile) RemoveEducation(id string) bool {
	kept := make([]Education, 0, len(p.Education))
	for _, e := range p.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	removed := len(kept) != len(p.Education)
	p.Education = kept
	return removed
}

// ExperienceInput is the raw request shape; dates are parsed during Validate.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// Build validates the input and returns an entry with the given id.
func (in ExperienceInput) Build(id string) (Experience, error) {
	var c Checker
	c.Required("title", in.Title, "Job title is required")
	c.Required("company", in.Company, "Company is required")
	c.Required("from", in.From, "Job start date is required")
	from, to, ok := parseRange(&c, in.From, in.To, false)
	if err := c.Err(); err != nil || !ok {
		return Experience{}, err
	}
	return Experience{
		ID:          id,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}, nil
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

func (in EducationInput) Build(id string) (Education, error) {
	var c Checker
	c.Required("school", in.School, "School is required")
	c.Required("degree", in.Degree, "Degree is required")
	c.Required("fieldofstudy", in.FieldOfStudy, "Field of study is required")
	c.Required("from", in.From, "From date is required and needs to be from the past")
	from, to, ok := parseRange(&c, in.From, in.To, true)
	if err := c.Err(); err != nil || !ok {
		return Education{}, err
	}
	return Education{
		ID:           id,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}, nil
}

// parseRange parses from/to and, when ordered is set, requires from < to.
// ok is false only when from is blank, which the caller has already recorded.
func parseRange(c *Checker, fromS, toS string, ordered bool) (time.Time, *time.Time, bool) {
	if strings.TrimSpace(fromS) == "" {
		return time.Time{}, nil, false
	}
	from, ok := ParseDate(fromS)
	if !ok {
		c.Add("from", "From date is not a valid date")
		return time.Time{}, nil, true
	}
	if strings.TrimSpace(toS) == "" {
		return from, nil, true
	}
	to, ok := ParseDate(toS)
	if !ok {
		c.Add("to", "To date is not a valid date")
		return from, nil, true
	}
	if ordered && !from.Before(to) {
		c.Add("from", "From date is required and needs to be from the past")
	}
	return from, &to, true
}
