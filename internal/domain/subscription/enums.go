package subscription

// ApplicantType discriminates which field group of the record is
// active. Values match the intake vocabulary of the paper form.
type ApplicantType string

const (
	ApplicantTypeIndividual ApplicantType = "Individual"
	ApplicantTypeJoint      ApplicantType = "Joint"
	ApplicantTypeCorporate  ApplicantType = "Corporate"
)

// IsValid checks if the ApplicantType is a valid value
func (a ApplicantType) IsValid() bool {
	switch a {
	case ApplicantTypeIndividual, ApplicantTypeJoint, ApplicantTypeCorporate:
		return true
	}
	return false
}

// String returns the string representation of ApplicantType
func (a ApplicantType) String() string {
	return string(a)
}

// AllApplicantTypes returns all valid ApplicantType values
func AllApplicantTypes() []ApplicantType {
	return []ApplicantType{ApplicantTypeIndividual, ApplicantTypeJoint, ApplicantTypeCorporate}
}

// Tenor represents the bond's fixed maturity duration
type Tenor string

const (
	Tenor2Year Tenor = "2-Year"
	Tenor3Year Tenor = "3-Year"
)

// IsValid checks if the Tenor is a valid value
func (t Tenor) IsValid() bool {
	switch t {
	case Tenor2Year, Tenor3Year:
		return true
	}
	return false
}

// String returns the string representation of Tenor
func (t Tenor) String() string {
	return string(t)
}

// Years returns the maturity duration in years, 0 for unknown tenors
func (t Tenor) Years() int {
	switch t {
	case Tenor2Year:
		return 2
	case Tenor3Year:
		return 3
	default:
		return 0
	}
}

// AllTenors returns all valid Tenor values
func AllTenors() []Tenor {
	return []Tenor{Tenor2Year, Tenor3Year}
}
