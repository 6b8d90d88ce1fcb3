package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanySubmission maps to kyb_submissions. One row per user, upserted on
// user_id as the wizard progresses.
type CompanySubmission struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	CompanyName               string `gorm:"type:varchar(255)"`
	TradesUnderDifferentName  bool   `gorm:"default:false"`
	TradingName               string `gorm:"type:varchar(255)"`
	CompanyRegistrationNumber string `gorm:"type:varchar(100);index"`
	CompanyRegistrationDate   string `gorm:"type:varchar(10)"`
	EntityType                string `gorm:"type:varchar(100)"`
	WebsiteOrBusinessChannel  string `gorm:"type:varchar(255)"`
	CountryOfRegistration     string `gorm:"type:varchar(100)"`

	Industry        string `gorm:"type:varchar(100)"`
	SubIndustry     string `gorm:"type:varchar(100)"`
	GoodsOrServices string `gorm:"type:text"`

	IncomingPaymentsMonthlyEuro string `gorm:"type:varchar(100)"`
	IncomingPaymentCountries    string `gorm:"type:text"`
	IncomingTransactionAmount   string `gorm:"type:varchar(100)"`
	OutgoingPaymentsMonthlyEuro string `gorm:"type:varchar(100)"`
	OutgoingPaymentCountries    string `gorm:"type:text"`
	OutgoingTransactionAmount   string `gorm:"type:varchar(100)"`

	ApplicantFirstName string `gorm:"type:varchar(100)"`
	ApplicantLastName  string `gorm:"type:varchar(100)"`
	ApplicantEmail     string `gorm:"type:varchar(255)"`

	Status         string `gorm:"type:varchar(50);default:'draft'"`
	Step1Completed bool   `gorm:"default:false"`
	Step2Completed bool   `gorm:"default:false"`
	Step3Completed bool   `gorm:"default:false"`
	Step4Completed bool   `gorm:"default:false"`
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CompanySubmission) TableName() string { return "kyb_submissions" }
