package resume

// Record is the structured result of parsing one resume. Scalar fields are empty
// when nothing was found; list fields are never nil.
type Record struct {
	FullName     string            `json:"full_name,omitempty"`
	FirstName    string            `json:"first_name,omitempty"`
	LastName     string            `json:"last_name,omitempty"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone_number,omitempty"`
	Location     string            `json:"location,omitempty"`
	LinkedInURL  string            `json:"linkedin_url,omitempty"`
	GitHubURL    string            `json:"github_url,omitempty"`
	TwitterURL   string            `json:"twitter_url,omitempty"`
	PortfolioURL string            `json:"portfolio_url,omitempty"`
	OtherLinks   []string          `json:"other_links"`
	Summary      string            `json:"summary,omitempty"`
	Skills       []string          `json:"skills"`
	Education    []EducationEntry  `json:"education"`
	Experience   []ExperienceEntry `json:"experience"`
}

type EducationEntry struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

func (e EducationEntry) empty() bool {
	return e.School == "" && e.Degree == "" && e.StartDate == "" && e.EndDate == "" && e.Summary == ""
}

type ExperienceEntry struct {
	JobTitle    string `json:"job_title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

func (e ExperienceEntry) empty() bool {
	return e.JobTitle == "" && e.Company == "" && e.Location == "" && e.StartDate == "" && e.EndDate == "" && e.Description == ""
}

func newRecord() Record {
	return Record{
		OtherLinks: []string{},
		Skills:     []string{},
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
	}
}
