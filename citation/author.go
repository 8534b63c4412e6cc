package citation

import "strings"

// Author is a single contributor to a cited work. Order within a citation is
// significant: the first author drives list truncation and in-text forms.
type Author struct {
	FirstName  string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	MiddleName string `json:"middleName,omitempty" yaml:"middleName,omitempty"`
	LastName   string `json:"lastName" yaml:"lastName"`
	Suffix     string `json:"suffix,omitempty" yaml:"suffix,omitempty"`

	// IsOrganization marks a corporate author. Organization authors render
	// as LastName verbatim in every style, bypassing name splitting.
	IsOrganization bool `json:"isOrganization,omitempty" yaml:"isOrganization,omitempty"`
}

// GivenNames returns the first and middle names joined with a space.
func (a Author) GivenNames() string {
	if a.MiddleName != "" {
		if a.FirstName != "" {
			return a.FirstName + " " + a.MiddleName
		}
		return a.MiddleName
	}
	return a.FirstName
}

// DirectName returns the name in "First Middle Last Suffix" order, or the
// organization name verbatim.
func (a Author) DirectName() string {
	if a.IsOrganization {
		return a.LastName
	}
	parts := make([]string, 0, 3)
	if given := a.GivenNames(); given != "" {
		parts = append(parts, given)
	}
	if a.LastName != "" {
		parts = append(parts, a.LastName)
	}
	if a.Suffix != "" {
		parts = append(parts, a.Suffix)
	}
	return strings.Join(parts, " ")
}

// InvertedName returns the name in "Last, First Middle, Suffix" order, or the
// organization name verbatim.
func (a Author) InvertedName() string {
	if a.IsOrganization {
		return a.LastName
	}
	name := a.LastName
	if given := a.GivenNames(); given != "" {
		name += ", " + given
	}
	if a.Suffix != "" {
		name += ", " + a.Suffix
	}
	return name
}
