// Package authors defines the bibliographic author record and the Builder
// that assembles it incrementally from discrete facts.
//
// The serialized shape of the record (field names and nesting, in both JSON
// and YAML) is the compatibility contract with downstream consumers such as
// schema validators and storage layers, and must not change.
package authors

// Author is a bibliographic person record in a scholarly catalog.
//
// Every field is created lazily: a container does not appear on the record
// until the first non-empty entry is added to it, and absent optional fields
// are omitted from serialized output. Entries within each list preserve
// insertion order; no deduplication or merging of entries is performed.
type Author struct {
	Name              *Name         `json:"name,omitempty" yaml:"name,omitempty"`                             // Personal name sub-record (merge semantics, see Builder)
	EmailAddresses    []string      `json:"email_addresses,omitempty" yaml:"email_addresses,omitempty"`       // Public email addresses
	Status            []Status      `json:"status,omitempty" yaml:"status,omitempty"`                         // Career status tags
	URLs              []URL         `json:"urls,omitempty" yaml:"urls,omitempty"`                             // Personal websites and blogs
	IDs               []Identifier  `json:"ids,omitempty" yaml:"ids,omitempty"`                               // External identifiers (social profiles, registries)
	ArxivCategories   []string      `json:"arxiv_categories,omitempty" yaml:"arxiv_categories,omitempty"`     // arXiv subject classification tags
	Positions         []Position    `json:"positions,omitempty" yaml:"positions,omitempty"`                   // Institutional affiliations
	ProjectMembership []Membership  `json:"project_membership,omitempty" yaml:"project_membership,omitempty"` // Project/experiment memberships
	Advisors          []Advisor     `json:"advisors,omitempty" yaml:"advisors,omitempty"`                     // Advisor relations
	PrivateNotes      []PrivateNote `json:"_private_notes,omitempty" yaml:"_private_notes,omitempty"`         // Internal curation notes, never public-facing
}

// Name is the author's personal name sub-record. Unlike the list-valued
// fields of Author, writes merge into the single Name instance held at
// Author.Name rather than appending new entries.
type Name struct {
	Value         *string  `json:"value,omitempty" yaml:"value,omitempty"`                   // Normalized full name ("Family, Given")
	PreferredName *string  `json:"preferred_name,omitempty" yaml:"preferred_name,omitempty"` // Display name preferred by the person
	NativeNames   []string `json:"native_names,omitempty" yaml:"native_names,omitempty"`     // Names in native scripts, in insertion order
}

// IsZero reports whether the name sub-record holds no data.
func (n Name) IsZero() bool {
	return n.Value == nil && n.PreferredName == nil && len(n.NativeNames) == 0
}

// URL is a link to a personal website.
type URL struct {
	Value       string  `json:"value" yaml:"value"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"` // Free label, or the fixed tag "blog"
}

// IsZero reports whether the entry carries a link.
func (u URL) IsZero() bool {
	return u.Value == ""
}

// Identifier is an external identifier for the person, tagged with the
// registry or platform it belongs to.
type Identifier struct {
	Value  string   `json:"value" yaml:"value"`
	Schema IDSchema `json:"schema" yaml:"schema"`
}

// IsZero reports whether the entry carries an identifier value. A schema
// tag alone is no data.
func (i Identifier) IsZero() bool {
	return i.Value == ""
}

// Position describes one institutional affiliation.
//
// CuratedRelation and Current are part of the record shape even when false,
// so they carry no omitempty tag.
type Position struct {
	Institution     string  `json:"institution" yaml:"institution"`
	StartDate       *string `json:"start_date,omitempty" yaml:"start_date,omitempty"` // Canonical date string
	EndDate         *string `json:"end_date,omitempty" yaml:"end_date,omitempty"`     // Canonical date string
	Rank            *Rank   `json:"rank,omitempty" yaml:"rank,omitempty"`
	Record          *string `json:"record,omitempty" yaml:"record,omitempty"` // URI of the institution record
	CuratedRelation bool    `json:"curated_relation" yaml:"curated_relation"`
	Current         bool    `json:"current" yaml:"current"`
}

// IsZero reports whether the affiliation carries any data. The boolean
// flags are always present and do not count.
func (p Position) IsZero() bool {
	return p.Institution == "" && p.StartDate == nil && p.EndDate == nil &&
		p.Rank == nil && p.Record == nil
}

// Membership describes one project or experiment the person worked on.
// The entry is keyed by project identity, serialized under "name".
type Membership struct {
	Project         string  `json:"name" yaml:"name"`
	Record          *string `json:"record,omitempty" yaml:"record,omitempty"` // URI of the project record
	StartDate       *string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate         *string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	CuratedRelation bool    `json:"curated_relation" yaml:"curated_relation"`
	Current         bool    `json:"current" yaml:"current"`
}

// IsZero reports whether the membership carries any data.
func (m Membership) IsZero() bool {
	return m.Project == "" && m.Record == nil && m.StartDate == nil && m.EndDate == nil
}

// Advisor describes one advisor relation.
type Advisor struct {
	Name            string      `json:"name" yaml:"name"` // Normalized full name
	IDs             StringList  `json:"ids,omitempty" yaml:"ids,omitempty"`
	DegreeType      *DegreeType `json:"degree_type,omitempty" yaml:"degree_type,omitempty"`
	Record          *string     `json:"record,omitempty" yaml:"record,omitempty"` // URI of the advisor record
	CuratedRelation bool        `json:"curated_relation" yaml:"curated_relation"`
}

// IsZero reports whether the advisor relation carries any data.
func (a Advisor) IsZero() bool {
	return a.Name == "" && len(a.IDs) == 0 && a.DegreeType == nil && a.Record == nil
}

// PrivateNote is an internal curation comment about the author. It is part
// of the record but not intended for public-facing output.
type PrivateNote struct {
	Value  string  `json:"value" yaml:"value"`
	Source *string `json:"source,omitempty" yaml:"source,omitempty"` // Attribution of the comment
}

// IsZero reports whether the note carries any data.
func (n PrivateNote) IsZero() bool {
	return n.Value == "" && n.Source == nil
}
