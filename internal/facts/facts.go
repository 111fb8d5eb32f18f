// Package facts defines the YAML fact-file format consumed by the
// scholarmap CLI and replays its contents through an authors.Builder.
// Each field of the document corresponds to one builder operation; absent
// or empty fields are simply skipped, mirroring the builder's own merge
// policy.
package facts

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/scholarmap/scholarmap/pkg/authors"
	"github.com/scholarmap/scholarmap/pkg/errors"
	"github.com/scholarmap/scholarmap/pkg/logging"
)

// Document is one author's worth of facts, in the order-independent form
// submitted by harvesters and curators.
type Document struct {
	Name            string     `yaml:"name" json:"name"`
	DisplayName     string     `yaml:"display_name" json:"display_name"`
	NativeNames     []string   `yaml:"native_names" json:"native_names"`
	Status          string     `yaml:"status" json:"status"`
	Emails          []string   `yaml:"emails" json:"emails"`
	ArxivCategories []string   `yaml:"arxiv_categories" json:"arxiv_categories"`
	URLs            []URLFact  `yaml:"urls" json:"urls"`
	Blogs           []string   `yaml:"blogs" json:"blogs"`
	LinkedIn        string     `yaml:"linkedin" json:"linkedin"`
	Twitter         string     `yaml:"twitter" json:"twitter"`
	Positions       []Position `yaml:"positions" json:"positions"`
	Projects        []Project  `yaml:"projects" json:"projects"`
	Advisors        []Advisor  `yaml:"advisors" json:"advisors"`
	Comments        []Comment  `yaml:"comments" json:"comments"`
}

// URLFact is a personal website with an optional description.
type URLFact struct {
	Value       string `yaml:"value" json:"value"`
	Description string `yaml:"description" json:"description"`
}

// Position is one institutional affiliation fact.
type Position struct {
	Institution string `yaml:"institution" json:"institution"`
	StartDate   string `yaml:"start_date" json:"start_date"`
	EndDate     string `yaml:"end_date" json:"end_date"`
	Rank        string `yaml:"rank" json:"rank"`
	Record      string `yaml:"record" json:"record"`
	Curated     bool   `yaml:"curated" json:"curated"`
	Current     bool   `yaml:"current" json:"current"`
}

// Project is one project/experiment membership fact.
type Project struct {
	Name      string `yaml:"name" json:"name"`
	Record    string `yaml:"record" json:"record"`
	StartDate string `yaml:"start_date" json:"start_date"`
	EndDate   string `yaml:"end_date" json:"end_date"`
	Curated   bool   `yaml:"curated" json:"curated"`
	Current   bool   `yaml:"current" json:"current"`
}

// Advisor is one advisor relation fact. IDs accepts a single identifier or
// a list.
type Advisor struct {
	Name       string             `yaml:"name" json:"name"`
	IDs        authors.StringList `yaml:"ids" json:"ids"`
	DegreeType string             `yaml:"degree_type" json:"degree_type"`
	Record     string             `yaml:"record" json:"record"`
	Curated    bool               `yaml:"curated" json:"curated"`
}

// Comment is one private curation note.
type Comment struct {
	Value  string `yaml:"value" json:"value"`
	Source string `yaml:"source" json:"source"`
}

// Load reads and parses a fact file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	return &doc, nil
}

// Apply replays every fact in the document through the builder, in the
// document's field order. Empty facts are no-ops by the builder's merge
// policy, so a sparse document is fine.
func (d *Document) Apply(b *authors.Builder) {
	b.SetName(d.Name)
	b.SetDisplayName(d.DisplayName)
	for _, name := range d.NativeNames {
		b.AddNativeName(name)
	}

	b.SetStatus(authors.Status(d.Status))

	for _, email := range d.Emails {
		b.AddEmailAddress(email)
	}
	for _, category := range d.ArxivCategories {
		b.AddResearchField(category)
	}

	for _, url := range d.URLs {
		b.AddURL(url.Value, url.Description)
	}
	for _, blog := range d.Blogs {
		b.AddBlog(blog)
	}
	b.AddLinkedIn(d.LinkedIn)
	b.AddTwitter(d.Twitter)

	for _, p := range d.Positions {
		opts := positionOptions(p)
		b.AddInstitution(p.Institution, opts...)
	}

	for _, p := range d.Projects {
		opts := projectOptions(p)
		b.AddProject(p.Name, opts...)
	}

	for _, a := range d.Advisors {
		opts := advisorOptions(a)
		b.AddAdvisor(a.Name, opts...)
	}

	for _, c := range d.Comments {
		b.AddComment(c.Value, c.Source)
	}

	logging.Debug().
		Int("positions", len(d.Positions)).
		Int("projects", len(d.Projects)).
		Int("advisors", len(d.Advisors)).
		Msg("Applied fact document")
}

// positionOptions translates a position fact into builder options.
func positionOptions(p Position) []authors.PositionOption {
	var opts []authors.PositionOption
	if p.StartDate != "" {
		opts = append(opts, authors.PositionStartDate(p.StartDate))
	}
	if p.EndDate != "" {
		opts = append(opts, authors.PositionEndDate(p.EndDate))
	}
	if p.Rank != "" {
		opts = append(opts, authors.PositionRank(authors.Rank(p.Rank)))
	}
	if p.Record != "" {
		opts = append(opts, authors.PositionRecord(p.Record))
	}
	if p.Curated {
		opts = append(opts, authors.PositionCurated())
	}
	if p.Current {
		opts = append(opts, authors.PositionCurrent())
	}
	return opts
}

// projectOptions translates a project fact into builder options.
func projectOptions(p Project) []authors.MembershipOption {
	var opts []authors.MembershipOption
	if p.Record != "" {
		opts = append(opts, authors.MembershipRecord(p.Record))
	}
	if p.StartDate != "" {
		opts = append(opts, authors.MembershipStartDate(p.StartDate))
	}
	if p.EndDate != "" {
		opts = append(opts, authors.MembershipEndDate(p.EndDate))
	}
	if p.Curated {
		opts = append(opts, authors.MembershipCurated())
	}
	if p.Current {
		opts = append(opts, authors.MembershipCurrent())
	}
	return opts
}

// advisorOptions translates an advisor fact into builder options.
func advisorOptions(a Advisor) []authors.AdvisorOption {
	var opts []authors.AdvisorOption
	if len(a.IDs) > 0 {
		opts = append(opts, authors.AdvisorIDs(a.IDs...))
	}
	if a.DegreeType != "" {
		opts = append(opts, authors.AdvisorDegreeType(authors.DegreeType(a.DegreeType)))
	}
	if a.Record != "" {
		opts = append(opts, authors.AdvisorRecord(a.Record))
	}
	if a.Curated {
		opts = append(opts, authors.AdvisorCurated())
	}
	return opts
}
