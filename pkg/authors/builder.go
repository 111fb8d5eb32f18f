package authors

import (
	"github.com/scholarmap/scholarmap/pkg/normalize"
)

// Builder incrementally assembles an Author record from discrete,
// possibly-incomplete facts, one call per fact.
//
// Every operation applies the same merge policy: empty input is a silent
// no-op, containers are created lazily on first use, and entries are
// appended in call order. The one exception is the name sub-record, whose
// operations merge into the single Name instance instead of appending.
//
// A Builder owns its record for the duration of a construction session and
// is not safe for concurrent use; callers building many records at once
// must use one Builder per record.
type Builder struct {
	author *Author
}

// BuilderOption defines a function that configures a Builder.
type BuilderOption func(*Builder)

// WithAuthor seeds the builder with a pre-existing record to continue
// editing. The record is taken as-is, without validation.
func WithAuthor(author *Author) BuilderOption {
	return func(b *Builder) {
		if author != nil {
			b.author = author
		}
	}
}

// NewBuilder creates a Builder over an empty record, unless one is seeded
// via WithAuthor.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		author: &Author{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Author hands off the record under construction by reference. The builder
// does not freeze or validate it.
func (b *Builder) Author() *Author {
	return b.author
}

// name returns the record's name sub-record, creating it on first use.
func (b *Builder) name() *Name {
	if b.author.Name == nil {
		b.author.Name = &Name{}
	}
	return b.author.Name
}

// SetName sets the author's full name: the family name, the given names,
// or both. The value is normalized to canonical "Family, Given" form.
func (b *Builder) SetName(value string) {
	normalized := normalize.Name(value)
	if normalized == "" {
		return
	}
	b.name().Value = &normalized
}

// SetDisplayName sets the name preferred for display, independent of
// whether a full name was set.
func (b *Builder) SetDisplayName(name string) {
	if name == "" {
		return
	}
	b.name().PreferredName = &name
}

// AddNativeName adds a name in the author's native script. Previously
// stored native names are preserved.
func (b *Builder) AddNativeName(name string) {
	if name == "" {
		return
	}
	n := b.name()
	n.NativeNames = append(n.NativeNames, name)
}

// AddEmailAddress adds a public email address.
func (b *Builder) AddEmailAddress(email string) {
	appendValue(&b.author.EmailAddresses, email)
}

// SetStatus adds the person's career status.
func (b *Builder) SetStatus(status Status) {
	appendValue(&b.author.Status, status)
}

// AddResearchField adds an arXiv category describing a field of research.
func (b *Builder) AddResearchField(category string) {
	appendValue(&b.author.ArxivCategories, category)
}

// AddURL adds a personal website with an optional short description.
func (b *Builder) AddURL(value, description string) {
	url := URL{Value: value}
	if description != "" {
		url.Description = &description
	}
	appendEntry(&b.author.URLs, url)
}

// AddBlog adds a personal website tagged as a blog.
func (b *Builder) AddBlog(url string) {
	b.AddURL(url, "blog")
}

// AddLinkedIn adds a link to the person's LinkedIn profile.
func (b *Builder) AddLinkedIn(url string) {
	appendEntry(&b.author.IDs, Identifier{
		Value:  url,
		Schema: IDSchemaLinkedIn,
	})
}

// AddTwitter adds a link to the person's Twitter profile.
func (b *Builder) AddTwitter(url string) {
	appendEntry(&b.author.IDs, Identifier{
		Value:  url,
		Schema: IDSchemaTwitter,
	})
}

// AddInstitution adds an institution where the person works or worked.
// The curated_relation and current flags are always part of the entry,
// defaulting to false; everything else is included only when supplied.
func (b *Builder) AddInstitution(institution string, opts ...PositionOption) {
	position := Position{
		Institution: institution,
	}

	for _, opt := range opts {
		opt(&position)
	}

	appendEntry(&b.author.Positions, position)
}

// AddProject adds a project or experiment the person worked on, keyed by
// the project's name.
func (b *Builder) AddProject(name string, opts ...MembershipOption) {
	membership := Membership{
		Project: name,
	}

	for _, opt := range opts {
		opt(&membership)
	}

	appendEntry(&b.author.ProjectMembership, membership)
}

// AddAdvisor adds an advisor relation. The advisor's name is normalized;
// the curated_relation flag is always part of the entry.
func (b *Builder) AddAdvisor(name string, opts ...AdvisorOption) {
	advisor := Advisor{
		Name: normalize.Name(name),
	}

	for _, opt := range opts {
		opt(&advisor)
	}

	appendEntry(&b.author.Advisors, advisor)
}

// AddComment adds a private curation comment with optional source
// attribution.
func (b *Builder) AddComment(comment, source string) {
	note := PrivateNote{Value: comment}
	if source != "" {
		note.Source = &source
	}
	appendEntry(&b.author.PrivateNotes, note)
}
