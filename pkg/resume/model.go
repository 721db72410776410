package resume

import "slices"

// ResumeData is the root document rendered by templates and mutated by edit
// sessions.
type ResumeData struct {
	PersonalInfo PersonalInfo  `json:"personalInfo" yaml:"personalInfo"`
	Summary      string        `json:"summary,omitempty" yaml:"summary,omitempty"`
	Experience   []Experience  `json:"experience" yaml:"experience" validate:"dive"`
	Education    []Education   `json:"education" yaml:"education" validate:"dive"`
	Skills       []Skill       `json:"skills" yaml:"skills" validate:"dive"`
	Achievements []Achievement `json:"achievements" yaml:"achievements" validate:"dive"`
	Sections     []Section     `json:"sections" yaml:"sections" validate:"dive"`
}

// PersonalInfo holds the header block.
type PersonalInfo struct {
	FullName string `json:"fullName" yaml:"fullName"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Photo    string `json:"photo,omitempty" yaml:"photo,omitempty"`
}

// Experience is a single position.
type Experience struct {
	ID           string   `json:"id" yaml:"id"`
	Company      string   `json:"company" yaml:"company"`
	Position     string   `json:"position" yaml:"position"`
	Location     string   `json:"location,omitempty" yaml:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Current      bool     `json:"current,omitempty" yaml:"current,omitempty"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	BulletPoints []string `json:"bulletPoints,omitempty" yaml:"bulletPoints,omitempty"`
}

// Education is a single degree or course of study.
type Education struct {
	ID        string `json:"id" yaml:"id"`
	School    string `json:"school" yaml:"school"`
	Degree    string `json:"degree,omitempty" yaml:"degree,omitempty"`
	Field     string `json:"field,omitempty" yaml:"field,omitempty"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty"`
	StartDate string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	GPA       string `json:"gpa,omitempty" yaml:"gpa,omitempty"`
}

// Skill is a named skill with an optional 0-5 proficiency level.
type Skill struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Level    int    `json:"level,omitempty" yaml:"level,omitempty" validate:"gte=0,lte=5"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Achievement is the achievements section item.
type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Section is a custom titled block (projects, volunteering, publications...).
type Section struct {
	ID      string        `json:"id" yaml:"id"`
	Title   string        `json:"title" yaml:"title"`
	Content string        `json:"content,omitempty" yaml:"content,omitempty"`
	Items   []SectionItem `json:"items,omitempty" yaml:"items,omitempty" validate:"dive"`
}

// SectionItem is an entry inside a custom section.
type SectionItem struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Clone returns a deep copy so callers can mutate without aliasing the
// source slices.
func (r ResumeData) Clone() ResumeData {
	out := r
	out.Experience = slices.Clone(r.Experience)
	for i := range out.Experience {
		out.Experience[i].BulletPoints = slices.Clone(out.Experience[i].BulletPoints)
	}
	out.Education = slices.Clone(r.Education)
	out.Skills = slices.Clone(r.Skills)
	out.Achievements = slices.Clone(r.Achievements)
	out.Sections = slices.Clone(r.Sections)
	for i := range out.Sections {
		out.Sections[i].Items = slices.Clone(out.Sections[i].Items)
	}
	return out
}

// IsEmpty reports whether the document carries no renderable content.
func (r ResumeData) IsEmpty() bool {
	return r.PersonalInfo == (PersonalInfo{}) &&
		r.Summary == "" &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Skills) == 0 &&
		len(r.Achievements) == 0 &&
		len(r.Sections) == 0
}
