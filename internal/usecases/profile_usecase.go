package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"snapaml.backend/internal/domain/entities"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/domain/repositories"
)

// ProfileFieldKind classifies how a profile field may be edited.
type ProfileFieldKind string

const (
	ProfileFieldText     ProfileFieldKind = "text"
	ProfileFieldSelect   ProfileFieldKind = "select"
	ProfileFieldReadonly ProfileFieldKind = "readonly"
)

// ProfileFieldSpec describes one editable cell of the profile view. The
// table replaces per-field dispatch: one generic editor walks it.
type ProfileFieldSpec struct {
	Name    string
	Column  string
	Label   string
	Kind    ProfileFieldKind
	Options func(current *entities.CompanySubmission) []string
}

// profileFields covers every field the profile view exposes. Identity
// fields established during onboarding are read-only; descriptive fields
// stay editable.
var profileFields = []ProfileFieldSpec{
	{Name: "companyName", Column: "company_name", Label: "Company name", Kind: ProfileFieldReadonly},
	{Name: "companyRegistrationNumber", Column: "company_registration_number", Label: "Registration number", Kind: ProfileFieldReadonly},
	{Name: "companyRegistrationDate", Column: "company_registration_date", Label: "Registration date", Kind: ProfileFieldReadonly},
	{Name: "entityType", Column: "entity_type", Label: "Entity type", Kind: ProfileFieldReadonly},
	{Name: "countryOfRegistration", Column: "country_of_registration", Label: "Country of registration", Kind: ProfileFieldReadonly},

	{Name: "tradingName", Column: "trading_name", Label: "Trading name", Kind: ProfileFieldText},
	{Name: "websiteOrBusinessChannel", Column: "website_or_business_channel", Label: "Website or business channel", Kind: ProfileFieldText},
	{Name: "goodsOrServices", Column: "goods_or_services", Label: "Goods or services", Kind: ProfileFieldText},
	{Name: "incomingPaymentsMonthlyEuro", Column: "incoming_payments_monthly_euro", Label: "Incoming payments (monthly EUR)", Kind: ProfileFieldText},
	{Name: "incomingPaymentCountries", Column: "incoming_payment_countries", Label: "Incoming payment countries", Kind: ProfileFieldText},
	{Name: "incomingTransactionAmount", Column: "incoming_transaction_amount", Label: "Incoming transaction amount", Kind: ProfileFieldText},
	{Name: "outgoingPaymentsMonthlyEuro", Column: "outgoing_payments_monthly_euro", Label: "Outgoing payments (monthly EUR)", Kind: ProfileFieldText},
	{Name: "outgoingPaymentCountries", Column: "outgoing_payment_countries", Label: "Outgoing payment countries", Kind: ProfileFieldText},
	{Name: "outgoingTransactionAmount", Column: "outgoing_transaction_amount", Label: "Outgoing transaction amount", Kind: ProfileFieldText},
	{Name: "applicantFirstName", Column: "applicant_first_name", Label: "Applicant first name", Kind: ProfileFieldText},
	{Name: "applicantLastName", Column: "applicant_last_name", Label: "Applicant last name", Kind: ProfileFieldText},
	{Name: "applicantEmail", Column: "applicant_email", Label: "Applicant email", Kind: ProfileFieldText},

	{Name: "industry", Column: "industry", Label: "Industry", Kind: ProfileFieldSelect,
		Options: func(*entities.CompanySubmission) []string { return IndustryNames() }},
	{Name: "subIndustry", Column: "sub_industry", Label: "Sub-industry", Kind: ProfileFieldSelect,
		Options: func(current *entities.CompanySubmission) []string { return SubIndustries(current.Industry) }},
}

func profileFieldByName(name string) (ProfileFieldSpec, bool) {
	for _, spec := range profileFields {
		if spec.Name == name {
			return spec, true
		}
	}
	return ProfileFieldSpec{}, false
}

// ProfileUsecase reads and edits the caller's own company submission.
type ProfileUsecase struct {
	companyRepo repositories.CompanySubmissionRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(companyRepo repositories.CompanySubmissionRepository) *ProfileUsecase {
	return &ProfileUsecase{companyRepo: companyRepo}
}

// GetSubmission returns the caller's own submission.
func (u *ProfileUsecase) GetSubmission(ctx context.Context, userID uuid.UUID) (*entities.CompanySubmission, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.Unauthorized("sign in required")
	}

	sub, err := u.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("no submission yet")
		}
		return nil, domainerrors.Persistence(err)
	}
	return sub, nil
}

// UpdateField edits one profile field, driven by the field descriptor
// table. Read-only fields and unknown names are rejected; select fields
// must carry an allowed option. Changing the industry clears a sub-industry
// that no longer belongs to it.
func (u *ProfileUsecase) UpdateField(ctx context.Context, userID uuid.UUID, field, value string) error {
	if userID == uuid.Nil {
		return domainerrors.Unauthorized("sign in required")
	}

	spec, ok := profileFieldByName(field)
	if !ok {
		return domainerrors.Validation("unknown profile field")
	}
	if spec.Kind == ProfileFieldReadonly {
		return domainerrors.Validation(spec.Label + " cannot be edited")
	}

	current, err := u.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("no submission yet")
		}
		return domainerrors.Persistence(err)
	}

	value = strings.TrimSpace(value)
	updates := map[string]interface{}{spec.Column: value}

	if spec.Kind == ProfileFieldSelect {
		allowed := false
		for _, opt := range spec.Options(current) {
			if opt == value {
				allowed = true
				break
			}
		}
		if !allowed {
			return domainerrors.Validation("invalid option for " + spec.Label)
		}
		if spec.Name == "industry" && !IsValidSubIndustry(value, current.SubIndustry) {
			updates["sub_industry"] = ""
		}
	}

	if err := u.companyRepo.UpdateFields(ctx, userID, updates); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("no submission yet")
		}
		return domainerrors.Persistence(err)
	}
	return nil
}

// EditableFields lists the profile descriptors with options resolved
// against the current submission, for the client to render.
func (u *ProfileUsecase) EditableFields(current *entities.CompanySubmission) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(profileFields))
	for _, spec := range profileFields {
		entry := map[string]interface{}{
			"name":  spec.Name,
			"label": spec.Label,
			"kind":  string(spec.Kind),
		}
		if spec.Kind == ProfileFieldSelect && current != nil {
			entry["options"] = spec.Options(current)
		}
		out = append(out, entry)
	}
	return out
}
