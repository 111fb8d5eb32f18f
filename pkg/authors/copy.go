package authors

import "slices"

// Clone creates a deep copy of the record, so callers can snapshot an
// author mid-construction without sharing state with the builder.
// Returns nil for a nil record.
func (a *Author) Clone() *Author {
	if a == nil {
		return nil
	}

	clone := *a
	clone.Name = a.Name.clone()
	clone.EmailAddresses = slices.Clone(a.EmailAddresses)
	clone.Status = slices.Clone(a.Status)
	clone.ArxivCategories = slices.Clone(a.ArxivCategories)

	if a.URLs != nil {
		clone.URLs = make([]URL, len(a.URLs))
		for i, u := range a.URLs {
			u.Description = clonePtr(u.Description)
			clone.URLs[i] = u
		}
	}

	clone.IDs = slices.Clone(a.IDs)

	if a.Positions != nil {
		clone.Positions = make([]Position, len(a.Positions))
		for i, p := range a.Positions {
			p.StartDate = clonePtr(p.StartDate)
			p.EndDate = clonePtr(p.EndDate)
			p.Rank = clonePtr(p.Rank)
			p.Record = clonePtr(p.Record)
			clone.Positions[i] = p
		}
	}

	if a.ProjectMembership != nil {
		clone.ProjectMembership = make([]Membership, len(a.ProjectMembership))
		for i, m := range a.ProjectMembership {
			m.Record = clonePtr(m.Record)
			m.StartDate = clonePtr(m.StartDate)
			m.EndDate = clonePtr(m.EndDate)
			clone.ProjectMembership[i] = m
		}
	}

	if a.Advisors != nil {
		clone.Advisors = make([]Advisor, len(a.Advisors))
		for i, adv := range a.Advisors {
			adv.IDs = slices.Clone(adv.IDs)
			adv.DegreeType = clonePtr(adv.DegreeType)
			adv.Record = clonePtr(adv.Record)
			clone.Advisors[i] = adv
		}
	}

	if a.PrivateNotes != nil {
		clone.PrivateNotes = make([]PrivateNote, len(a.PrivateNotes))
		for i, n := range a.PrivateNotes {
			n.Source = clonePtr(n.Source)
			clone.PrivateNotes[i] = n
		}
	}

	return &clone
}

// clone creates a deep copy of the name sub-record.
func (n *Name) clone() *Name {
	if n == nil {
		return nil
	}

	nameCopy := *n
	nameCopy.Value = clonePtr(n.Value)
	nameCopy.PreferredName = clonePtr(n.PreferredName)
	nameCopy.NativeNames = slices.Clone(n.NativeNames)
	return &nameCopy
}

// clonePtr copies the value behind an optional field pointer.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
