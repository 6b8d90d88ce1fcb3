package entities

import (
	"time"

	"github.com/google/uuid"
)

// CompanyRiskProfile is the externally produced risk/compliance read model,
// keyed by submission id. This service never writes it; rows appear via an
// out-of-band screening pipeline and are surfaced only to approved
// counterparties.
type CompanyRiskProfile struct {
	ID                 uuid.UUID `json:"id"`
	SubmissionID       uuid.UUID `json:"submissionId"`
	RegistrationNumber string    `json:"registrationNumber"`

	CompanyName      string `json:"companyName,omitempty"`
	LegalForm        string `json:"legalForm,omitempty"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	RegistrationDate string `json:"registrationDate,omitempty"`
	SEPA             string `json:"sepa,omitempty"`

	IsActive             *bool `json:"isActive,omitempty"`
	IsPEP                *bool `json:"isPep,omitempty"`
	IsSanctioned         *bool `json:"isSanctioned,omitempty"`
	SanctionsMatch       *bool `json:"sanctionsMatch,omitempty"`
	HasInsolvency        *bool `json:"hasInsolvency,omitempty"`
	HasInsolvencyHistory *bool `json:"hasInsolvencyHistory,omitempty"`
	VIESValid            *bool `json:"viesValid,omitempty"`

	RiskLevel             string `json:"riskLevel,omitempty"`
	OverallRiskLevel      string `json:"overallRiskLevel,omitempty"`
	TaxRating             string `json:"taxRating,omitempty"`
	AdverseMediaMentions  *int   `json:"adverseMediaMentions,omitempty"`
	AdverseMediaRiskScore *int   `json:"adverseMediaRiskScore,omitempty"`

	CheckedAt *time.Time `json:"checkedAt,omitempty"`
}
