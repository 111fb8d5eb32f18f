package authors

import (
	"github.com/scholarmap/scholarmap/pkg/normalize"
)

// PositionOption defines a function that configures a Position entry.
type PositionOption func(*Position)

// PositionStartDate sets the date the person joined the institution, in
// any common format. The date is normalized to canonical form.
func PositionStartDate(date string) PositionOption {
	return func(p *Position) {
		if date == "" {
			return
		}
		normalized := normalize.Date(date)
		p.StartDate = &normalized
	}
}

// PositionEndDate sets the date the person left the institution.
func PositionEndDate(date string) PositionOption {
	return func(p *Position) {
		if date == "" {
			return
		}
		normalized := normalize.Date(date)
		p.EndDate = &normalized
	}
}

// PositionRank sets the academic rank of the person inside the institution.
func PositionRank(rank Rank) PositionOption {
	return func(p *Position) {
		if rank == "" {
			return
		}
		p.Rank = &rank
	}
}

// PositionRecord sets the URI of the institution record.
func PositionRecord(uri string) PositionOption {
	return func(p *Position) {
		if uri == "" {
			return
		}
		p.Record = &uri
	}
}

// PositionCurated marks the affiliation as curated, i.e. verified.
func PositionCurated() PositionOption {
	return func(p *Position) {
		p.CuratedRelation = true
	}
}

// PositionCurrent marks the person as currently associated with the
// institution.
func PositionCurrent() PositionOption {
	return func(p *Position) {
		p.Current = true
	}
}

// MembershipOption defines a function that configures a Membership entry.
type MembershipOption func(*Membership)

// MembershipStartDate sets the date the person started working on the
// project. The date is normalized to canonical form.
func MembershipStartDate(date string) MembershipOption {
	return func(m *Membership) {
		if date == "" {
			return
		}
		normalized := normalize.Date(date)
		m.StartDate = &normalized
	}
}

// MembershipEndDate sets the date the person stopped working on the
// project.
func MembershipEndDate(date string) MembershipOption {
	return func(m *Membership) {
		if date == "" {
			return
		}
		normalized := normalize.Date(date)
		m.EndDate = &normalized
	}
}

// MembershipRecord sets the URI of the project record.
func MembershipRecord(uri string) MembershipOption {
	return func(m *Membership) {
		if uri == "" {
			return
		}
		m.Record = &uri
	}
}

// MembershipCurated marks the membership as curated, i.e. verified.
func MembershipCurated() MembershipOption {
	return func(m *Membership) {
		m.CuratedRelation = true
	}
}

// MembershipCurrent marks the person as currently working on the project.
func MembershipCurrent() MembershipOption {
	return func(m *Membership) {
		m.Current = true
	}
}

// AdvisorOption defines a function that configures an Advisor entry.
type AdvisorOption func(*Advisor)

// AdvisorIDs sets the advisor's external identifiers. A single identifier
// or many may be supplied; they are coerced into one ordered list.
func AdvisorIDs(ids ...string) AdvisorOption {
	return func(a *Advisor) {
		for _, id := range ids {
			if id == "" {
				continue
			}
			a.IDs = append(a.IDs, id)
		}
	}
}

// AdvisorDegreeType sets the type of degree the advisor helped with.
func AdvisorDegreeType(degree DegreeType) AdvisorOption {
	return func(a *Advisor) {
		if degree == "" {
			return
		}
		a.DegreeType = &degree
	}
}

// AdvisorRecord sets the URI of the advisor record.
func AdvisorRecord(uri string) AdvisorOption {
	return func(a *Advisor) {
		if uri == "" {
			return
		}
		a.Record = &uri
	}
}

// AdvisorCurated marks the advisor relation as curated, i.e. verified.
func AdvisorCurated() AdvisorOption {
	return func(a *Advisor) {
		a.CuratedRelation = true
	}
}
