package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"snapaml.backend/internal/interfaces/http/middleware"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		name TEXT,
		password_hash TEXT,
		role TEXT,
		kyc_status TEXT,
		is_email_verified BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE email_verifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token TEXT NOT NULL UNIQUE,
		expires_at DATETIME NOT NULL,
		verified_at DATETIME,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE kyb_submissions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		company_name TEXT,
		trades_under_different_name BOOLEAN DEFAULT FALSE,
		trading_name TEXT,
		company_registration_number TEXT,
		company_registration_date TEXT,
		entity_type TEXT,
		website_or_business_channel TEXT,
		country_of_registration TEXT,
		industry TEXT,
		sub_industry TEXT,
		goods_or_services TEXT,
		incoming_payments_monthly_euro TEXT,
		incoming_payment_countries TEXT,
		incoming_transaction_amount TEXT,
		outgoing_payments_monthly_euro TEXT,
		outgoing_payment_countries TEXT,
		outgoing_transaction_amount TEXT,
		applicant_first_name TEXT,
		applicant_last_name TEXT,
		applicant_email TEXT,
		status TEXT DEFAULT 'draft',
		step1_completed BOOLEAN DEFAULT FALSE,
		step2_completed BOOLEAN DEFAULT FALSE,
		step3_completed BOOLEAN DEFAULT FALSE,
		step4_completed BOOLEAN DEFAULT FALSE,
		completed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE kyc_submissions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		first_name TEXT,
		last_name TEXT,
		date_of_birth TEXT,
		place_of_birth TEXT,
		nationality TEXT,
		additional_citizenships TEXT,
		address_line1 TEXT,
		address_line2 TEXT,
		city TEXT,
		state TEXT,
		postal_code TEXT,
		country TEXT,
		length_of_residence TEXT,
		contact_email TEXT,
		contact_phone TEXT,
		document_type TEXT,
		document_number TEXT,
		issuing_country TEXT,
		expiry_date TEXT,
		document_ref TEXT,
		is_us_person BOOLEAN DEFAULT FALSE,
		tax_residency_countries TEXT,
		tax_identification_numbers TEXT,
		occupation TEXT,
		employer TEXT,
		annual_income TEXT,
		source_of_funds TEXT,
		source_of_wealth TEXT,
		step1_completed BOOLEAN DEFAULT FALSE,
		step2_completed BOOLEAN DEFAULT FALSE,
		step3_completed BOOLEAN DEFAULT FALSE,
		step4_completed BOOLEAN DEFAULT FALSE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE kyb_requests (
		id TEXT PRIMARY KEY,
		requester_user_id TEXT NOT NULL,
		requester_email TEXT NOT NULL,
		requested_user_id TEXT,
		company_registration_number TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE kyb_approved_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		requester_user_id TEXT NOT NULL,
		approver_user_id TEXT NOT NULL,
		company_registration_number TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE company_risk_profiles (
		id TEXT PRIMARY KEY,
		submission_id TEXT NOT NULL UNIQUE,
		registration_number TEXT,
		company_name TEXT,
		legal_form TEXT,
		address TEXT,
		city TEXT,
		registration_date TEXT,
		sepa TEXT,
		is_active BOOLEAN,
		is_pep BOOLEAN,
		is_sanctioned BOOLEAN,
		sanctions_match BOOLEAN,
		has_insolvency BOOLEAN,
		has_insolvency_history BOOLEAN,
		vies_valid BOOLEAN,
		risk_level TEXT,
		overall_risk_level TEXT,
		tax_rating TEXT,
		adverse_media_mentions INTEGER,
		adverse_media_risk_score INTEGER,
		checked_at DATETIME
	);`)
}

// asUser injects an authenticated user into the gin context, standing in
// for the real auth middleware.
func asUser(userID uuid.UUID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, email)
		c.Set(middleware.UserRoleKey, "user")
		c.Next()
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body=%s", w.Body.String())
	return body
}

func companyStepPayload(step int, registrationNumber string) map[string]interface{} {
	switch step {
	case 1:
		return map[string]interface{}{
			"companyName":               "Acme GmbH",
			"companyRegistrationNumber": registrationNumber,
			"companyRegistrationDate":   "2019-04-01",
			"entityType":                "GmbH",
			"countryOfRegistration":     "DE",
		}
	case 2:
		return map[string]interface{}{
			"industry":        "Technology",
			"subIndustry":     "Software development",
			"goodsOrServices": "SaaS subscriptions",
		}
	case 3:
		return map[string]interface{}{
			"incomingPaymentsMonthlyEuro": "10000-50000",
			"incomingPaymentCountries":    "DE,FR",
			"outgoingPaymentsMonthlyEuro": "10000-50000",
			"outgoingPaymentCountries":    "DE",
		}
	default:
		return map[string]interface{}{
			"applicantFirstName": "Ada",
			"applicantLastName":  "Lovelace",
			"applicantEmail":     "ada@acme.test",
		}
	}
}
