package usecases

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"snapaml.backend/internal/domain/entities"
)

// StepGateway persists one wizard step. The session itself never merges or
// advances; that stays with the caller so a failed submit leaves both the
// draft and the step pointer untouched.
type StepGateway func(ctx context.Context, step int, data map[string]interface{}) error

// WizardSession holds one user's in-progress onboarding draft: the current
// step pointer and the accumulated per-section field maps. It is owned state
// handed to callers by the WizardStore, never shared globals.
type WizardSession struct {
	mu          sync.Mutex
	currentStep int
	sections    map[string]map[string]interface{}
}

// NewWizardSession creates an empty session positioned at step 1.
func NewWizardSession() *WizardSession {
	return &WizardSession{
		currentStep: 1,
		sections:    make(map[string]map[string]interface{}),
	}
}

// CurrentStep returns the step pointer.
func (s *WizardSession) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep
}

// SetCurrentStep moves the step pointer. Back navigation is always allowed
// and never touches persisted data.
func (s *WizardSession) SetCurrentStep(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep = n
}

// UpdateSection shallow-merges partial into the named section's draft: new
// keys overwrite, omitted keys are retained.
func (s *WizardSession) UpdateSection(section string, partial map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dst, ok := s.sections[section]
	if !ok {
		dst = make(map[string]interface{}, len(partial))
		s.sections[section] = dst
	}
	for k, v := range partial {
		dst[k] = v
	}
}

// Section returns a copy of the named section's draft.
func (s *WizardSession) Section(section string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.sections[section]
	out := make(map[string]interface{}, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Sections returns a copy of the whole draft.
func (s *WizardSession) Sections() map[string]map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]map[string]interface{}, len(s.sections))
	for name, fields := range s.sections {
		section := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			section[k] = v
		}
		out[name] = section
	}
	return out
}

// SubmitStep hands the step's data to the gateway. On failure the error is
// returned as-is and no session state changes; the caller merges the data
// and advances only after success.
func (s *WizardSession) SubmitStep(ctx context.Context, gateway StepGateway, step int, data map[string]interface{}) error {
	return gateway(ctx, step, data)
}

// NextIncompleteStep computes the resume step from the persisted completion
// flags: the first step whose flag is false, scanning in order. All flags
// true yields WizardStepCount+1, the finished signal.
func NextIncompleteStep(flags [entities.WizardStepCount]bool) int {
	for i, done := range flags {
		if !done {
			return i + 1
		}
	}
	return entities.WizardStepCount + 1
}

// WizardStore is a concurrency-safe registry of wizard sessions keyed by
// user id. One session per user preserves the single-writer property.
type WizardStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*WizardSession
}

// NewWizardStore creates an empty registry.
func NewWizardStore() *WizardStore {
	return &WizardStore{sessions: make(map[uuid.UUID]*WizardSession)}
}

// Session returns the user's session, creating it on first use.
func (st *WizardStore) Session(userID uuid.UUID) *WizardSession {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	if !ok {
		s = NewWizardSession()
		st.sessions[userID] = s
	}
	return s
}

// Drop discards the user's session. Called once the final step has been
// persisted; the draft is no longer authoritative after that.
func (st *WizardStore) Drop(userID uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
