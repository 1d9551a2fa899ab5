package service

import (
	"context"
	"sync"
	"time"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"

	"github.com/google/uuid"
)

type draftSession struct {
	editor  *DraftEditor
	touched time.Time
}

// DraftRegistry keeps the open contract forms of the back office, keyed by session id
type DraftRegistry struct {
	contracts ContractService
	cars      CarService
	idleTTL   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*draftSession
}

func NewDraftRegistry(contracts ContractService, cars CarService, idleTTL time.Duration) *DraftRegistry {
	return &DraftRegistry{
		contracts: contracts,
		cars:      cars,
		idleTTL:   idleTTL,
		now:       time.Now,
		sessions:  make(map[string]*draftSession),
	}
}

// Open starts a new create-mode draft
func (r *DraftRegistry) Open() (string, *DraftEditor) {
	return r.open(domain.NewContractDraft())
}

// OpenForContract starts an edit-mode draft on an existing contract
func (r *DraftRegistry) OpenForContract(ctx context.Context, contractID string) (string, *DraftEditor, error) {
	c, err := r.contracts.GetContract(ctx, contractID)
	if err != nil {
		return "", nil, err
	}
	id, editor := r.open(domain.DraftFromContract(c))
	return id, editor, nil
}

func (r *DraftRegistry) open(d domain.ContractDraft) (string, *DraftEditor) {
	id := uuid.NewString()
	d.ID = id
	editor := NewDraftEditor(r.contracts, r.cars, d)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &draftSession{editor: editor, touched: r.now()}
	return id, editor
}

// Get returns the editor for id and marks the session as used
func (r *DraftRegistry) Get(id string) (*DraftEditor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	s.touched = r.now()
	return s.editor, nil
}

// Discard closes and forgets the session
func (r *DraftRegistry) Discard(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrDraftNotFound
	}
	s.editor.Close()
	return nil
}

// Len reports the number of open sessions
func (r *DraftRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep discards sessions idle for longer than the TTL and returns how many were removed
func (r *DraftRegistry) Sweep(now time.Time) int {
	r.mu.Lock()
	var expired []*draftSession
	for id, s := range r.sessions {
		if now.Sub(s.touched) > r.idleTTL {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.editor.Close()
	}
	if len(expired) > 0 {
		logger.Info("Swept idle contract drafts", "count", len(expired))
	}
	return len(expired)
}
