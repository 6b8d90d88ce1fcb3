package models

import (
	"time"

	"github.com/google/uuid"
)

// IndividualSubmission maps to kyc_submissions.
type IndividualSubmission struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	FirstName              string `gorm:"type:varchar(100)"`
	LastName               string `gorm:"type:varchar(100)"`
	DateOfBirth            string `gorm:"type:varchar(10)"`
	PlaceOfBirth           string `gorm:"type:varchar(100)"`
	Nationality            string `gorm:"type:varchar(100)"`
	AdditionalCitizenships string `gorm:"type:text"`
	AddressLine1           string `gorm:"type:varchar(255)"`
	AddressLine2           string `gorm:"type:varchar(255)"`
	City                   string `gorm:"type:varchar(100)"`
	State                  string `gorm:"type:varchar(100)"`
	PostalCode             string `gorm:"type:varchar(20)"`
	Country                string `gorm:"type:varchar(100)"`
	LengthOfResidence      string `gorm:"type:varchar(50)"`
	ContactEmail           string `gorm:"type:varchar(255)"`
	ContactPhone           string `gorm:"type:varchar(50)"`

	DocumentType   string `gorm:"type:varchar(50)"`
	DocumentNumber string `gorm:"type:varchar(100)"`
	IssuingCountry string `gorm:"type:varchar(100)"`
	ExpiryDate     string `gorm:"type:varchar(10)"`
	DocumentRef    string `gorm:"type:varchar(512)"`

	IsUSPerson               bool   `gorm:"default:false"`
	TaxResidencyCountries    string `gorm:"type:text"`
	TaxIdentificationNumbers string `gorm:"type:text"`

	Occupation     string `gorm:"type:varchar(100)"`
	Employer       string `gorm:"type:varchar(255)"`
	AnnualIncome   string `gorm:"type:varchar(100)"`
	SourceOfFunds  string `gorm:"type:varchar(100)"`
	SourceOfWealth string `gorm:"type:varchar(100)"`

	Step1Completed bool `gorm:"default:false"`
	Step2Completed bool `gorm:"default:false"`
	Step3Completed bool `gorm:"default:false"`
	Step4Completed bool `gorm:"default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (IndividualSubmission) TableName() string { return "kyc_submissions" }
