package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"snapaml.backend/internal/infrastructure/repositories"
	"snapaml.backend/internal/usecases"
)

type requestFixture struct {
	db          *gorm.DB
	handler     *RequestHandler
	requesterID uuid.UUID
	approverID  uuid.UUID
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	createAllTables(t, db)

	companyRepo := repositories.NewCompanySubmissionRepository(db)
	submissionUsecase := usecases.NewSubmissionUsecase(
		companyRepo,
		repositories.NewIndividualSubmissionRepository(db),
		repositories.NewUserRepository(db),
	)

	fx := &requestFixture{
		db:          db,
		requesterID: uuid.New(),
		approverID:  uuid.New(),
	}

	// Both parties hold completed submissions.
	for step := 1; step <= 4; step++ {
		require.NoError(t, submissionUsecase.SubmitCompanyStep(context.Background(), fx.requesterID, step, companyStepPayload(step, "HRB-REQ")))
		require.NoError(t, submissionUsecase.SubmitCompanyStep(context.Background(), fx.approverID, step, companyStepPayload(step, "HRB-APP")))
	}

	requestUsecase := usecases.NewRequestUsecase(
		repositories.NewVerificationRequestRepository(db),
		repositories.NewApprovedRelationshipRepository(db),
		companyRepo,
		repositories.NewRiskProfileRepository(db),
	)
	fx.handler = NewRequestHandler(requestUsecase)
	return fx
}

func (fx *requestFixture) routerFor(userID uuid.UUID, email string) *gin.Engine {
	r := gin.New()
	g := r.Group("/", asUser(userID, email))
	g.POST("/requests", fx.handler.CreateRequest)
	g.GET("/requests/incoming", fx.handler.ListIncoming)
	g.GET("/requests/outgoing", fx.handler.ListOutgoing)
	g.POST("/requests/:id/approve", fx.handler.ApproveRequest)
	g.GET("/counterparties", fx.handler.ListCounterparties)
	return r
}

func TestRequestHandler_FullApprovalFlow(t *testing.T) {
	fx := newRequestFixture(t)
	requester := fx.routerFor(fx.requesterID, "req@acme.test")
	approver := fx.routerFor(fx.approverID, "app@other.test")

	// Requester files a request against the approver's number.
	w := doJSON(t, requester, http.MethodPost, "/requests", map[string]interface{}{
		"registrationNumber": "HRB-APP",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)["request"].(map[string]interface{})
	requestID := created["id"].(string)

	// Duplicate pending request is rejected.
	w = doJSON(t, requester, http.MethodPost, "/requests", map[string]interface{}{
		"registrationNumber": "HRB-APP",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// The approver sees it incoming; the requester sees it outgoing.
	w = doJSON(t, approver, http.MethodGet, "/requests/incoming", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["requests"], 1)

	w = doJSON(t, requester, http.MethodGet, "/requests/outgoing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["requests"], 1)

	// The requester cannot approve a request aimed at another company.
	w = doJSON(t, requester, http.MethodPost, "/requests/"+requestID+"/approve", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// The approver approves it.
	w = doJSON(t, approver, http.MethodPost, "/requests/"+requestID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	approved := decodeBody(t, w)["request"].(map[string]interface{})
	assert.Equal(t, "approved", approved["status"])

	// Approved requests leave both pending lists.
	w = doJSON(t, approver, http.MethodGet, "/requests/incoming", nil)
	assert.Empty(t, decodeBody(t, w)["requests"])
	w = doJSON(t, requester, http.MethodGet, "/requests/outgoing", nil)
	assert.Empty(t, decodeBody(t, w)["requests"])

	// The requester now sees the approver as a counterparty.
	w = doJSON(t, requester, http.MethodGet, "/counterparties", nil)
	require.Equal(t, http.StatusOK, w.Code)
	counterparties := decodeBody(t, w)["counterparties"].([]interface{})
	require.Len(t, counterparties, 1)
	first := counterparties[0].(map[string]interface{})
	sub := first["submission"].(map[string]interface{})
	assert.Equal(t, "HRB-APP", sub["companyRegistrationNumber"])
	assert.Nil(t, first["riskProfile"])
}

func TestRequestHandler_CounterpartyRiskEnrichment(t *testing.T) {
	fx := newRequestFixture(t)
	requester := fx.routerFor(fx.requesterID, "req@acme.test")
	approver := fx.routerFor(fx.approverID, "app@other.test")

	w := doJSON(t, requester, http.MethodPost, "/requests", map[string]interface{}{
		"registrationNumber": "HRB-APP",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	requestID := decodeBody(t, w)["request"].(map[string]interface{})["id"].(string)

	w = doJSON(t, approver, http.MethodPost, "/requests/"+requestID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Attach a risk profile to the approver's submission.
	var submissionID string
	require.NoError(t, fx.db.Table("kyb_submissions").
		Where("user_id = ?", fx.approverID).
		Pluck("id", &submissionID).Error)
	mustExec(t, fx.db, `INSERT INTO company_risk_profiles
		(id, submission_id, registration_number, overall_risk_level, is_sanctioned, checked_at)
		VALUES (?, ?, 'HRB-APP', 'low', FALSE, ?)`,
		uuid.New().String(), submissionID, time.Now())

	w = doJSON(t, requester, http.MethodGet, "/counterparties", nil)
	require.Equal(t, http.StatusOK, w.Code)
	counterparties := decodeBody(t, w)["counterparties"].([]interface{})
	require.Len(t, counterparties, 1)
	risk := counterparties[0].(map[string]interface{})["riskProfile"].(map[string]interface{})
	assert.Equal(t, "low", risk["overallRiskLevel"])
}

func TestRequestHandler_Validation(t *testing.T) {
	fx := newRequestFixture(t)
	requester := fx.routerFor(fx.requesterID, "req@acme.test")

	w := doJSON(t, requester, http.MethodPost, "/requests", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, requester, http.MethodPost, "/requests/not-a-uuid/approve", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, requester, http.MethodPost, "/requests/"+uuid.New().String()+"/approve", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
