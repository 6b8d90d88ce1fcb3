package entities

import (
	"time"

	"github.com/google/uuid"
)

// WizardStepCount is the number of ordered steps in both onboarding wizards.
const WizardStepCount = 4

// SubmissionStatus represents the lifecycle of a submission record
type SubmissionStatus string

const (
	SubmissionStatusDraft     SubmissionStatus = "draft"
	SubmissionStatusCompleted SubmissionStatus = "completed"
)

// CompanySubmission is the persisted KYB onboarding record, one per user.
// Field groups map 1:1 onto the four wizard steps; a group is authoritative
// only once its step flag is true. The row may stay partially filled
// indefinitely and is never deleted.
type CompanySubmission struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`

	// Step 1: company details
	CompanyName               string `json:"companyName,omitempty"`
	TradesUnderDifferentName  bool   `json:"tradesUnderDifferentName"`
	TradingName               string `json:"tradingName,omitempty"`
	CompanyRegistrationNumber string `json:"companyRegistrationNumber,omitempty"`
	CompanyRegistrationDate   string `json:"companyRegistrationDate,omitempty"` // YYYY-MM-DD
	EntityType                string `json:"entityType,omitempty"`
	WebsiteOrBusinessChannel  string `json:"websiteOrBusinessChannel,omitempty"`
	CountryOfRegistration     string `json:"countryOfRegistration,omitempty"`

	// Step 2: industry & business type
	Industry        string `json:"industry,omitempty"`
	SubIndustry     string `json:"subIndustry,omitempty"`
	GoodsOrServices string `json:"goodsOrServices,omitempty"`

	// Step 3: transaction information
	IncomingPaymentsMonthlyEuro string `json:"incomingPaymentsMonthlyEuro,omitempty"`
	IncomingPaymentCountries    string `json:"incomingPaymentCountries,omitempty"`
	IncomingTransactionAmount   string `json:"incomingTransactionAmount,omitempty"`
	OutgoingPaymentsMonthlyEuro string `json:"outgoingPaymentsMonthlyEuro,omitempty"`
	OutgoingPaymentCountries    string `json:"outgoingPaymentCountries,omitempty"`
	OutgoingTransactionAmount   string `json:"outgoingTransactionAmount,omitempty"`

	// Step 4: applicant details
	ApplicantFirstName string `json:"applicantFirstName,omitempty"`
	ApplicantLastName  string `json:"applicantLastName,omitempty"`
	ApplicantEmail     string `json:"applicantEmail,omitempty"`

	Status         SubmissionStatus `json:"status"`
	Step1Completed bool             `json:"step1Completed"`
	Step2Completed bool             `json:"step2Completed"`
	Step3Completed bool             `json:"step3Completed"`
	Step4Completed bool             `json:"step4Completed"`
	CompletedAt    *time.Time       `json:"completedAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// StepFlags returns the four completion flags in step order.
func (s *CompanySubmission) StepFlags() [WizardStepCount]bool {
	return [WizardStepCount]bool{s.Step1Completed, s.Step2Completed, s.Step3Completed, s.Step4Completed}
}

// IsCompleted reports whether the submission has been finalized.
func (s *CompanySubmission) IsCompleted() bool {
	return s.CompletedAt != nil
}
