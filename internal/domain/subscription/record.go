package subscription

import (
	"github.com/fgnsb/backend/internal/domain/shared/valueobject"
)

// SubscriptionRecord is the flat applicant record one subscription
// form is generated from. Field keys match the intake payload of the
// official form; absent or empty values are tolerated everywhere and
// render as blanks. The record is consumed whole and never mutated by
// the engine.
type SubscriptionRecord struct {
	// Bond terms
	Tenor         Tenor             `json:"tenor" validate:"required"`
	MonthOfOffer  string            `json:"month_of_offer"`
	BondValue     valueobject.Money `json:"bond_value" validate:"required"`
	AmountInWords string            `json:"amount_in_words"`
	CSCSNumber    string            `json:"cscs_number"`
	CHNNumber     string            `json:"chn_number"`

	ApplicantType ApplicantType `json:"applicant_type"`

	// Primary applicant
	Title             string `json:"title"`
	FullName          string `json:"full_name" validate:"required"`
	DateOfBirth       string `json:"date_of_birth"`
	PhoneNumber       string `json:"phone_number" validate:"required"`
	Email             string `json:"email" validate:"required"`
	Occupation        string `json:"occupation"`
	PassportNo        string `json:"passport_no"`
	NextOfKin         string `json:"next_of_kin"`
	MothersMaidenName string `json:"mothers_maiden_name"`
	Address           string `json:"address"`

	// Joint applicant, active only when ApplicantType is Joint
	JointTitle       string `json:"joint_title"`
	JointFullName    string `json:"joint_full_name" validate:"required"`
	JointDateOfBirth string `json:"joint_date_of_birth"`
	JointPhoneNumber string `json:"joint_phone_number" validate:"required"`
	JointEmail       string `json:"joint_email" validate:"required"`
	JointOccupation  string `json:"joint_occupation"`
	JointPassportNo  string `json:"joint_passport_no"`
	JointNextOfKin   string `json:"joint_next_of_kin"`
	JointAddress     string `json:"joint_address"`

	// Corporate applicant, active only when ApplicantType is Corporate
	CompanyName     string `json:"company_name" validate:"required"`
	RCNumber        string `json:"rc_number" validate:"required"`
	BusinessType    string `json:"business_type"`
	ContactPerson   string `json:"contact_person" validate:"required"`
	CorpPhoneNumber string `json:"corp_phone_number" validate:"required"`
	CorpEmail       string `json:"corp_email" validate:"required"`
	CorpPassportNo  string `json:"corp_passport_no"`

	// Bank details
	BankName      string `json:"bank_name" validate:"required"`
	BankBranch    string `json:"bank_branch"`
	AccountNumber string `json:"account_number" validate:"required"`
	SortCode      string `json:"sort_code"`
	BVN           string `json:"bvn" validate:"required"`

	// Joint bank details, surfaced only when ApplicantType is Joint
	JointBankName      string `json:"joint_bank_name"`
	JointBankBranch    string `json:"joint_bank_branch"`
	JointAccountNumber string `json:"joint_account_number"`
	JointSortCode      string `json:"joint_sort_code"`
	JointBVN           string `json:"joint_bvn"`

	// Classification
	IsResident         bool     `json:"is_resident"`
	InvestorCategories []string `json:"investor_category"`

	// Distribution
	AgentName       string `json:"agent_name"`
	StockbrokerCode string `json:"stockbroker_code"`

	// Witness, rendered only when NeedsWitness is set
	NeedsWitness        bool   `json:"needs_witness"`
	WitnessName         string `json:"witness_name"`
	WitnessAddress      string `json:"witness_address"`
	WitnessAcknowledged bool   `json:"witness_acknowledged"`
}

// PersonalDetails is the primary applicant field group.
type PersonalDetails struct {
	Title             string
	FullName          string
	DateOfBirth       string
	PhoneNumber       string
	Email             string
	Occupation        string
	PassportNo        string
	NextOfKin         string
	MothersMaidenName string
	Address           string
}

// JointDetails is the second applicant's field group on a joint
// subscription.
type JointDetails struct {
	Title       string
	FullName    string
	DateOfBirth string
	PhoneNumber string
	Email       string
	Occupation  string
	PassportNo  string
	NextOfKin   string
	Address     string
}

// CorporateDetails is the corporate applicant field group. Address is
// shared with the record's single address field, as on the paper form.
type CorporateDetails struct {
	CompanyName   string
	RCNumber      string
	BusinessType  string
	ContactPerson string
	PhoneNumber   string
	Email         string
	PassportNo    string
	Address       string
}

// ApplicantKind is the closed set of applicant variants a record
// classifies into. Exactly three types implement it; consumers switch
// exhaustively over IndividualApplicant, JointApplicants and
// CorporateApplicant.
type ApplicantKind interface {
	isApplicantKind()
}

// IndividualApplicant is a subscription by one natural person.
type IndividualApplicant struct {
	Person PersonalDetails
}

// JointApplicants is a subscription by two natural persons.
type JointApplicants struct {
	Primary PersonalDetails
	Joint   JointDetails
}

// CorporateApplicant is a subscription by a registered company.
type CorporateApplicant struct {
	Company CorporateDetails
}

func (IndividualApplicant) isApplicantKind() {}
func (JointApplicants) isApplicantKind()     {}
func (CorporateApplicant) isApplicantKind()  {}

// Classify resolves the record's applicant variant. A missing or
// unrecognized ApplicantType deterministically classifies as
// IndividualApplicant so that generation stays total.
func (r SubscriptionRecord) Classify() ApplicantKind {
	switch r.ApplicantType {
	case ApplicantTypeJoint:
		return JointApplicants{Primary: r.personal(), Joint: r.joint()}
	case ApplicantTypeCorporate:
		return CorporateApplicant{Company: r.corporate()}
	default:
		return IndividualApplicant{Person: r.personal()}
	}
}

func (r SubscriptionRecord) personal() PersonalDetails {
	return PersonalDetails{
		Title:             r.Title,
		FullName:          r.FullName,
		DateOfBirth:       r.DateOfBirth,
		PhoneNumber:       r.PhoneNumber,
		Email:             r.Email,
		Occupation:        r.Occupation,
		PassportNo:        r.PassportNo,
		NextOfKin:         r.NextOfKin,
		MothersMaidenName: r.MothersMaidenName,
		Address:           r.Address,
	}
}

func (r SubscriptionRecord) joint() JointDetails {
	return JointDetails{
		Title:       r.JointTitle,
		FullName:    r.JointFullName,
		DateOfBirth: r.JointDateOfBirth,
		PhoneNumber: r.JointPhoneNumber,
		Email:       r.JointEmail,
		Occupation:  r.JointOccupation,
		PassportNo:  r.JointPassportNo,
		NextOfKin:   r.JointNextOfKin,
		Address:     r.JointAddress,
	}
}

func (r SubscriptionRecord) corporate() CorporateDetails {
	return CorporateDetails{
		CompanyName:   r.CompanyName,
		RCNumber:      r.RCNumber,
		BusinessType:  r.BusinessType,
		ContactPerson: r.ContactPerson,
		PhoneNumber:   r.CorpPhoneNumber,
		Email:         r.CorpEmail,
		PassportNo:    r.CorpPassportNo,
		Address:       r.Address,
	}
}

// SelectedCategories returns the record's investor classifications as
// a set for membership checks during rendering.
func (r SubscriptionRecord) SelectedCategories() map[string]bool {
	set := make(map[string]bool, len(r.InvestorCategories))
	for _, c := range r.InvestorCategories {
		set[c] = true
	}
	return set
}

// WithinBondLimits reports whether the bond value sits inside the
// published minimum and maximum for one subscription.
func (r SubscriptionRecord) WithinBondLimits() bool {
	amount := r.BondValue.Amount()
	return amount.GreaterThanOrEqual(BondValueMin) && amount.LessThanOrEqual(BondValueMax)
}
