package subscription

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fgnsb/backend/internal/domain/shared/valueobject"
)

// validate reports missing required fields without ever rejecting a
// record. Generation is total; callers surface the result as warnings.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// Report field names by their payload keys, not Go identifiers.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// A zero Money counts as absent for the required tag.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(valueobject.Money); ok {
			if m.IsZero() {
				return ""
			}
			return m.StringFixed(2)
		}
		return nil
	}, valueobject.Money{})

	return v
}

// Required field sets per applicant variant, by struct field name.
var (
	commonRequired    = []string{"Tenor", "BondValue", "BankName", "AccountNumber", "BVN"}
	personRequired    = []string{"FullName", "PhoneNumber", "Email"}
	jointRequired     = []string{"JointFullName", "JointPhoneNumber", "JointEmail"}
	corporateRequired = []string{"CompanyName", "RCNumber", "ContactPerson", "CorpPhoneNumber", "CorpEmail"}
)

// MissingFields returns the payload keys of required fields the record
// leaves empty, based on its applicant classification. An empty slice
// means the record is complete enough to file.
func (r SubscriptionRecord) MissingFields() []string {
	fields := make([]string, 0, len(commonRequired)+len(personRequired)+len(jointRequired))
	fields = append(fields, commonRequired...)

	switch r.Classify().(type) {
	case JointApplicants:
		fields = append(fields, personRequired...)
		fields = append(fields, jointRequired...)
	case CorporateApplicant:
		fields = append(fields, corporateRequired...)
	default:
		fields = append(fields, personRequired...)
	}

	err := validate.StructPartial(r, fields...)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	missing := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		missing = append(missing, e.Field())
	}
	return missing
}
