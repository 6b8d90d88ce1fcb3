package entities

import (
	"time"

	"github.com/google/uuid"
)

// IndividualSubmission is the persisted KYC onboarding record, one per
// user. Same step-flag shape as CompanySubmission but for natural persons;
// there is no badge for individuals, hence no completion timestamp.
type IndividualSubmission struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`

	// Step 1: personal information
	FirstName              string `json:"firstName,omitempty"`
	LastName               string `json:"lastName,omitempty"`
	DateOfBirth            string `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	PlaceOfBirth           string `json:"placeOfBirth,omitempty"`
	Nationality            string `json:"nationality,omitempty"`
	AdditionalCitizenships string `json:"additionalCitizenships,omitempty"`
	AddressLine1           string `json:"addressLine1,omitempty"`
	AddressLine2           string `json:"addressLine2,omitempty"`
	City                   string `json:"city,omitempty"`
	State                  string `json:"state,omitempty"`
	PostalCode             string `json:"postalCode,omitempty"`
	Country                string `json:"country,omitempty"`
	LengthOfResidence      string `json:"lengthOfResidence,omitempty"`
	ContactEmail           string `json:"contactEmail,omitempty"`
	ContactPhone           string `json:"contactPhone,omitempty"`

	// Step 2: identification
	DocumentType   string `json:"documentType,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
	IssuingCountry string `json:"issuingCountry,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"` // YYYY-MM-DD
	DocumentRef    string `json:"documentRef,omitempty"`

	// Step 3: tax information
	IsUSPerson               bool   `json:"isUsPerson"`
	TaxResidencyCountries    string `json:"taxResidencyCountries,omitempty"`
	TaxIdentificationNumbers string `json:"taxIdentificationNumbers,omitempty"`

	// Step 4: employment
	Occupation     string `json:"occupation,omitempty"`
	Employer       string `json:"employer,omitempty"`
	AnnualIncome   string `json:"annualIncome,omitempty"`
	SourceOfFunds  string `json:"sourceOfFunds,omitempty"`
	SourceOfWealth string `json:"sourceOfWealth,omitempty"`

	Step1Completed bool      `json:"step1Completed"`
	Step2Completed bool      `json:"step2Completed"`
	Step3Completed bool      `json:"step3Completed"`
	Step4Completed bool      `json:"step4Completed"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// StepFlags returns the four completion flags in step order.
func (s *IndividualSubmission) StepFlags() [WizardStepCount]bool {
	return [WizardStepCount]bool{s.Step1Completed, s.Step2Completed, s.Step3Completed, s.Step4Completed}
}
