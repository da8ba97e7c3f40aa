package models

// ProjectType tags a catalog entry as recent work or as a legacy-year project.
type ProjectType string

const (
	ProjectTypeRecent ProjectType = "Recent"
	ProjectType2022   ProjectType = "2022"
)

// placeholderHref is used for projects without a public link.
const placeholderHref = "#"

// Project is one entry of the portfolio catalog. Title is the identity key.
type Project struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Year        int         `json:"year"`
	Tech        []string    `json:"tech"`
	Link        string      `json:"link,omitempty"`
	Type        ProjectType `json:"type"`
}

// IsRecent reports whether the project is tagged as recent work.
func (p Project) IsRecent() bool {
	return p.Type == ProjectTypeRecent
}

// Href returns the anchor target for the project, falling back to a
// placeholder when no link is set.
func (p Project) Href() string {
	if p.Link == "" {
		return placeholderHref
	}
	return p.Link
}

// Clone returns a deep copy so callers cannot mutate shared tech slices.
func (p Project) Clone() Project {
	out := p
	if p.Tech != nil {
		out.Tech = make([]string, len(p.Tech))
		copy(out.Tech, p.Tech)
	}
	return out
}
