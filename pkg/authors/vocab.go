package authors

// IDSchema identifies the registry or platform an external identifier
// belongs to. The builder does not validate identifier values against their
// schema; the tags exist for compile-time safety and consistency.
type IDSchema string

// String returns the string representation of an IDSchema.
func (s IDSchema) String() string {
	return string(s)
}

// Known identifier schemas.
const (
	IDSchemaLinkedIn      IDSchema = "LINKEDIN"
	IDSchemaTwitter       IDSchema = "TWITTER"
	IDSchemaORCID         IDSchema = "ORCID"
	IDSchemaInspireID     IDSchema = "INSPIRE ID"
	IDSchemaInspireBAI    IDSchema = "INSPIRE BAI"
	IDSchemaArxiv         IDSchema = "ARXIV"
	IDSchemaCERN          IDSchema = "CERN"
	IDSchemaDESY          IDSchema = "DESY"
	IDSchemaGoogleScholar IDSchema = "GOOGLESCHOLAR"
	IDSchemaJACoW         IDSchema = "JACOW"
	IDSchemaKaken         IDSchema = "KAKEN"
	IDSchemaResearcherID  IDSchema = "RESEARCHERID"
	IDSchemaScopus        IDSchema = "SCOPUS"
	IDSchemaSLAC          IDSchema = "SLAC"
	IDSchemaViaf          IDSchema = "VIAF"
	IDSchemaWikipedia     IDSchema = "WIKIPEDIA"
)

// Status is a career status tag for an author.
type Status string

// String returns the string representation of a Status.
func (s Status) String() string {
	return string(s)
}

// Known author statuses.
const (
	StatusActive   Status = "active"
	StatusDeceased Status = "deceased"
	StatusDeparted Status = "departed"
	StatusRetired  Status = "retired"
)

// Rank is the academic rank of a person within an institution.
type Rank string

// String returns the string representation of a Rank.
func (r Rank) String() string {
	return string(r)
}

// Known academic ranks.
const (
	RankSenior        Rank = "SENIOR"
	RankJunior        Rank = "JUNIOR"
	RankStaff         Rank = "STAFF"
	RankVisitor       Rank = "VISITOR"
	RankPostdoc       Rank = "POSTDOC"
	RankPhD           Rank = "PHD"
	RankMaster        Rank = "MASTER"
	RankUndergraduate Rank = "UNDERGRADUATE"
	RankOther         Rank = "OTHER"
)

// DegreeType is the type of degree an advisor helped with.
type DegreeType string

// String returns the string representation of a DegreeType.
func (d DegreeType) String() string {
	return string(d)
}

// Known degree types.
const (
	DegreePhD          DegreeType = "phd"
	DegreeHabilitation DegreeType = "habilitation"
	DegreeMaster       DegreeType = "master"
	DegreeBachelor     DegreeType = "bachelor"
	DegreeDiploma      DegreeType = "diploma"
	DegreeLaurea       DegreeType = "laurea"
	DegreeOther        DegreeType = "other"
)
