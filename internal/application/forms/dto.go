package forms

import (
	"time"

	"github.com/fgnsb/backend/internal/domain/shared"
	"github.com/fgnsb/backend/internal/domain/shared/valueobject"
	"github.com/fgnsb/backend/internal/domain/subscription"
)

// =============================================================================
// Subscription Form DTOs
// =============================================================================

// SubscriptionFormRequest is the intake payload one subscription form
// is generated from. Every field may be left empty; missing values
// render as blanks and are reported back as warnings, never errors.
type SubscriptionFormRequest struct {
	// Bond terms
	Tenor         string `json:"tenor"`
	MonthOfOffer  string `json:"month_of_offer"`
	BondValue     string `json:"bond_value"` // decimal naira amount, e.g. "50000.00"
	AmountInWords string `json:"amount_in_words"`
	CSCSNumber    string `json:"cscs_number"`
	CHNNumber     string `json:"chn_number"`

	ApplicantType string `json:"applicant_type"`

	// Primary applicant
	Title             string `json:"title"`
	FullName          string `json:"full_name"`
	DateOfBirth       string `json:"date_of_birth"`
	PhoneNumber       string `json:"phone_number"`
	Email             string `json:"email"`
	Occupation        string `json:"occupation"`
	PassportNo        string `json:"passport_no"`
	NextOfKin         string `json:"next_of_kin"`
	MothersMaidenName string `json:"mothers_maiden_name"`
	Address           string `json:"address"`

	// Joint applicant
	JointTitle       string `json:"joint_title"`
	JointFullName    string `json:"joint_full_name"`
	JointDateOfBirth string `json:"joint_date_of_birth"`
	JointPhoneNumber string `json:"joint_phone_number"`
	JointEmail       string `json:"joint_email"`
	JointOccupation  string `json:"joint_occupation"`
	JointPassportNo  string `json:"joint_passport_no"`
	JointNextOfKin   string `json:"joint_next_of_kin"`
	JointAddress     string `json:"joint_address"`

	// Corporate applicant
	CompanyName     string `json:"company_name"`
	RCNumber        string `json:"rc_number"`
	BusinessType    string `json:"business_type"`
	ContactPerson   string `json:"contact_person"`
	CorpPhoneNumber string `json:"corp_phone_number"`
	CorpEmail       string `json:"corp_email"`
	CorpPassportNo  string `json:"corp_passport_no"`

	// Bank details
	BankName      string `json:"bank_name"`
	BankBranch    string `json:"bank_branch"`
	AccountNumber string `json:"account_number"`
	SortCode      string `json:"sort_code"`
	BVN           string `json:"bvn"`

	// Joint bank details
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

	// Witness
	NeedsWitness        bool   `json:"needs_witness"`
	WitnessName         string `json:"witness_name"`
	WitnessAddress      string `json:"witness_address"`
	WitnessAcknowledged bool   `json:"witness_acknowledged"`
}

// FormDocumentResponse describes one generated document.
type FormDocumentResponse struct {
	FormRef       string    `json:"form_ref"`
	Path          string    `json:"path,omitempty"`
	ArchiveKey    string    `json:"archive_key,omitempty"`
	Size          int64     `json:"size"`
	Pages         int       `json:"pages"`
	MissingFields []string  `json:"missing_fields,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// =============================================================================
// Mapping
// =============================================================================

// toRecord maps the intake payload onto the domain record. A bond
// value that does not parse as a decimal amount, is negative or sits
// beyond the representable range is caller misuse and rejected before
// any rendering happens.
func (r SubscriptionFormRequest) toRecord() (subscription.SubscriptionRecord, error) {
	bondValue := valueobject.ZeroMoney()
	if r.BondValue != "" {
		parsed, err := valueobject.NewMoneyFromString(r.BondValue)
		if err != nil {
			return subscription.SubscriptionRecord{}, shared.NewDomainError(
				"INVALID_INPUT", "bond_value is not a valid amount")
		}
		bondValue = parsed
	}

	return subscription.SubscriptionRecord{
		Tenor:         subscription.Tenor(r.Tenor),
		MonthOfOffer:  r.MonthOfOffer,
		BondValue:     bondValue,
		AmountInWords: r.AmountInWords,
		CSCSNumber:    r.CSCSNumber,
		CHNNumber:     r.CHNNumber,

		ApplicantType: subscription.ApplicantType(r.ApplicantType),

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

		JointTitle:       r.JointTitle,
		JointFullName:    r.JointFullName,
		JointDateOfBirth: r.JointDateOfBirth,
		JointPhoneNumber: r.JointPhoneNumber,
		JointEmail:       r.JointEmail,
		JointOccupation:  r.JointOccupation,
		JointPassportNo:  r.JointPassportNo,
		JointNextOfKin:   r.JointNextOfKin,
		JointAddress:     r.JointAddress,

		CompanyName:     r.CompanyName,
		RCNumber:        r.RCNumber,
		BusinessType:    r.BusinessType,
		ContactPerson:   r.ContactPerson,
		CorpPhoneNumber: r.CorpPhoneNumber,
		CorpEmail:       r.CorpEmail,
		CorpPassportNo:  r.CorpPassportNo,

		BankName:      r.BankName,
		BankBranch:    r.BankBranch,
		AccountNumber: r.AccountNumber,
		SortCode:      r.SortCode,
		BVN:           r.BVN,

		JointBankName:      r.JointBankName,
		JointBankBranch:    r.JointBankBranch,
		JointAccountNumber: r.JointAccountNumber,
		JointSortCode:      r.JointSortCode,
		JointBVN:           r.JointBVN,

		IsResident:         r.IsResident,
		InvestorCategories: r.InvestorCategories,

		AgentName:       r.AgentName,
		StockbrokerCode: r.StockbrokerCode,

		NeedsWitness:        r.NeedsWitness,
		WitnessName:         r.WitnessName,
		WitnessAddress:      r.WitnessAddress,
		WitnessAcknowledged: r.WitnessAcknowledged,
	}, nil
}
