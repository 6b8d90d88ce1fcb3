package usecases

import (
	"fmt"
	"strings"
	"time"

	domainerrors "snapaml.backend/internal/domain/errors"
)

// FieldKind classifies how a draft value is validated and stored.
type FieldKind string

const (
	FieldText FieldKind = "text"
	FieldBool FieldKind = "bool"
	FieldDate FieldKind = "date"
)

// FieldSpec maps one draft field onto its flat submission column. The same
// table drives step validation, upsert payload building, and the profile
// editor, so a field is defined in exactly one place.
type FieldSpec struct {
	Key      string // draft key as sent by the client
	Column   string // persisted column name
	Kind     FieldKind
	Required bool
}

var companyStepFields = map[int][]FieldSpec{
	1: {
		{Key: "companyName", Column: "company_name", Kind: FieldText, Required: true},
		{Key: "tradesUnderDifferentName", Column: "trades_under_different_name", Kind: FieldBool},
		{Key: "tradingName", Column: "trading_name", Kind: FieldText},
		{Key: "companyRegistrationNumber", Column: "company_registration_number", Kind: FieldText, Required: true},
		{Key: "companyRegistrationDate", Column: "company_registration_date", Kind: FieldDate, Required: true},
		{Key: "entityType", Column: "entity_type", Kind: FieldText, Required: true},
		{Key: "websiteOrBusinessChannel", Column: "website_or_business_channel", Kind: FieldText},
		{Key: "countryOfRegistration", Column: "country_of_registration", Kind: FieldText, Required: true},
	},
	2: {
		{Key: "industry", Column: "industry", Kind: FieldText, Required: true},
		{Key: "subIndustry", Column: "sub_industry", Kind: FieldText},
		{Key: "goodsOrServices", Column: "goods_or_services", Kind: FieldText, Required: true},
	},
	3: {
		{Key: "incomingPaymentsMonthlyEuro", Column: "incoming_payments_monthly_euro", Kind: FieldText, Required: true},
		{Key: "incomingPaymentCountries", Column: "incoming_payment_countries", Kind: FieldText, Required: true},
		{Key: "incomingTransactionAmount", Column: "incoming_transaction_amount", Kind: FieldText},
		{Key: "outgoingPaymentsMonthlyEuro", Column: "outgoing_payments_monthly_euro", Kind: FieldText, Required: true},
		{Key: "outgoingPaymentCountries", Column: "outgoing_payment_countries", Kind: FieldText, Required: true},
		{Key: "outgoingTransactionAmount", Column: "outgoing_transaction_amount", Kind: FieldText},
	},
	4: {
		{Key: "applicantFirstName", Column: "applicant_first_name", Kind: FieldText, Required: true},
		{Key: "applicantLastName", Column: "applicant_last_name", Kind: FieldText, Required: true},
		{Key: "applicantEmail", Column: "applicant_email", Kind: FieldText, Required: true},
	},
}

var individualStepFields = map[int][]FieldSpec{
	1: {
		{Key: "firstName", Column: "first_name", Kind: FieldText, Required: true},
		{Key: "lastName", Column: "last_name", Kind: FieldText, Required: true},
		{Key: "dateOfBirth", Column: "date_of_birth", Kind: FieldDate, Required: true},
		{Key: "placeOfBirth", Column: "place_of_birth", Kind: FieldText},
		{Key: "nationality", Column: "nationality", Kind: FieldText, Required: true},
		{Key: "additionalCitizenships", Column: "additional_citizenships", Kind: FieldText},
		{Key: "addressLine1", Column: "address_line1", Kind: FieldText, Required: true},
		{Key: "addressLine2", Column: "address_line2", Kind: FieldText},
		{Key: "city", Column: "city", Kind: FieldText, Required: true},
		{Key: "state", Column: "state", Kind: FieldText},
		{Key: "postalCode", Column: "postal_code", Kind: FieldText},
		{Key: "country", Column: "country", Kind: FieldText, Required: true},
		{Key: "lengthOfResidence", Column: "length_of_residence", Kind: FieldText},
		{Key: "contactEmail", Column: "contact_email", Kind: FieldText},
		{Key: "contactPhone", Column: "contact_phone", Kind: FieldText},
	},
	2: {
		{Key: "documentType", Column: "document_type", Kind: FieldText, Required: true},
		{Key: "documentNumber", Column: "document_number", Kind: FieldText, Required: true},
		{Key: "issuingCountry", Column: "issuing_country", Kind: FieldText, Required: true},
		{Key: "expiryDate", Column: "expiry_date", Kind: FieldDate},
		{Key: "documentRef", Column: "document_ref", Kind: FieldText},
	},
	3: {
		{Key: "isUsPerson", Column: "is_us_person", Kind: FieldBool},
		{Key: "taxResidencyCountries", Column: "tax_residency_countries", Kind: FieldText, Required: true},
		{Key: "taxIdentificationNumbers", Column: "tax_identification_numbers", Kind: FieldText},
	},
	4: {
		{Key: "occupation", Column: "occupation", Kind: FieldText, Required: true},
		{Key: "employer", Column: "employer", Kind: FieldText},
		{Key: "annualIncome", Column: "annual_income", Kind: FieldText},
		{Key: "sourceOfFunds", Column: "source_of_funds", Kind: FieldText, Required: true},
		{Key: "sourceOfWealth", Column: "source_of_wealth", Kind: FieldText},
	},
}

// dateLayouts accepted from clients; canonical storage form is the first one.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

func canonicalDate(value string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("invalid date %q", value)
}

// buildStepPayload validates the step's draft data against its field specs
// and returns the column payload with the step's completion flag set. Only
// columns owned by the step appear in the result, so an upsert can never
// clobber another step's data.
func buildStepPayload(specs []FieldSpec, step int, data map[string]interface{}) (map[string]interface{}, error) {
	payload := make(map[string]interface{}, len(specs)+1)

	for _, spec := range specs {
		raw, ok := data[spec.Key]
		if !ok || raw == nil {
			if spec.Required {
				return nil, domainerrors.Validation(fmt.Sprintf("%s is required", spec.Key))
			}
			continue
		}

		switch spec.Kind {
		case FieldBool:
			b, ok := raw.(bool)
			if !ok {
				return nil, domainerrors.Validation(fmt.Sprintf("%s must be a boolean", spec.Key))
			}
			payload[spec.Column] = b

		case FieldDate:
			s, ok := raw.(string)
			if !ok {
				return nil, domainerrors.Validation(fmt.Sprintf("%s must be a date string", spec.Key))
			}
			s = strings.TrimSpace(s)
			if s == "" {
				if spec.Required {
					return nil, domainerrors.Validation(fmt.Sprintf("%s is required", spec.Key))
				}
				continue
			}
			canonical, err := canonicalDate(s)
			if err != nil {
				return nil, domainerrors.Validation(fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", spec.Key))
			}
			payload[spec.Column] = canonical

		default:
			s, ok := raw.(string)
			if !ok {
				return nil, domainerrors.Validation(fmt.Sprintf("%s must be a string", spec.Key))
			}
			s = strings.TrimSpace(s)
			if s == "" {
				if spec.Required {
					return nil, domainerrors.Validation(fmt.Sprintf("%s is required", spec.Key))
				}
				continue
			}
			payload[spec.Column] = s
		}
	}

	payload[fmt.Sprintf("step%d_completed", step)] = true
	return payload, nil
}
