package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationRequest maps to kyb_requests.
type VerificationRequest struct {
	ID                        uuid.UUID   `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RequesterUserID           uuid.UUID   `gorm:"type:uuid;not null;index"`
	RequesterEmail            string      `gorm:"type:varchar(255);not null"`
	RequestedUserID           null.String `gorm:"type:uuid"`
	CompanyRegistrationNumber string      `gorm:"type:varchar(100);not null;index"`
	Status                    string      `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func (VerificationRequest) TableName() string { return "kyb_requests" }

// ApprovedRelationship maps to kyb_approved_requests.
type ApprovedRelationship struct {
	ID                        int64       `gorm:"primaryKey;autoIncrement"`
	RequesterUserID           uuid.UUID   `gorm:"type:uuid;not null;index"`
	ApproverUserID            uuid.UUID   `gorm:"type:uuid;not null;index"`
	CompanyRegistrationNumber null.String `gorm:"type:varchar(100)"`
	CreatedAt                 time.Time
	UpdatedAt                 *time.Time
}

func (ApprovedRelationship) TableName() string { return "kyb_approved_requests" }
