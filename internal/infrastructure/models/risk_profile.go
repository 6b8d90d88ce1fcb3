package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanyRiskProfile maps to company_risk_profiles. Rows are written by an
// external screening pipeline; this service only reads them.
type CompanyRiskProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SubmissionID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	RegistrationNumber string    `gorm:"type:varchar(100);index"`

	CompanyName      string `gorm:"type:varchar(255)"`
	LegalForm        string `gorm:"type:varchar(100)"`
	Address          string `gorm:"type:varchar(255)"`
	City             string `gorm:"type:varchar(100)"`
	RegistrationDate string `gorm:"type:varchar(20)"`
	SEPA             string `gorm:"type:varchar(50)"`

	IsActive             *bool
	IsPEP                *bool
	IsSanctioned         *bool
	SanctionsMatch       *bool
	HasInsolvency        *bool
	HasInsolvencyHistory *bool
	VIESValid            *bool

	RiskLevel             string `gorm:"type:varchar(50)"`
	OverallRiskLevel      string `gorm:"type:varchar(50)"`
	TaxRating             string `gorm:"type:varchar(50)"`
	AdverseMediaMentions  *int
	AdverseMediaRiskScore *int

	CheckedAt *time.Time
}

func (CompanyRiskProfile) TableName() string { return "company_risk_profiles" }
