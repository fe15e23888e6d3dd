package models

import (
	"strings"
	"time"

	"dossier/internal/phase"
	id "dossier/pkg/domain"
	dErrors "dossier/pkg/domain-errors"
)

// PhaseEvent records one status change. Timestamp may be nil for events
// imported from systems that did not record when the transition happened.
type PhaseEvent struct {
	Phase     phase.ID   `json:"phase"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Process is the aggregate root for one client transaction.
//
// Invariants:
//   - ClientName is non-empty and at most 256 characters
//   - StatusHistory is append-only; entries are never rewritten or removed
//   - Field group values only change via ApplyPatch, which never replaces a
//     stored non-empty value with an empty one
//   - CreatedAt is immutable after construction
type Process struct {
	ID            id.ProcessID   `json:"id"`
	ClientName    string         `json:"client_name"`
	Status        phase.ID       `json:"status"`
	StatusHistory []PhaseEvent   `json:"status_history"`
	Personal      PersonalData   `json:"personal_data"`
	Financial     FinancialData  `json:"financial_data"`
	RealEstate    RealEstateData `json:"real_estate_data"`
	Credit        CreditData     `json:"credit_data"`
	CoBuyers      []Person       `json:"co_buyers,omitempty"`
	Seller        *Person        `json:"seller,omitempty"`
	Broker        *Broker        `json:"broker,omitempty"`
	Email         string         `json:"email,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewProcess constructs a process in the initial pipeline phase.
func NewProcess(processID id.ProcessID, clientName string, now time.Time) (*Process, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "client name cannot be empty")
	}
	if len(clientName) > 256 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "client name must be 256 characters or less")
	}
	return &Process{
		ID:            processID,
		ClientName:    clientName,
		Status:        phase.Proposal,
		StatusHistory: []PhaseEvent{{Phase: phase.Proposal, Timestamp: &now}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ApplyPatch replaces the mergeable field groups and additional outputs with
// the patch's already-merged values. The mapper guarantees the non-empty-wins
// policy, so wholesale assignment here cannot lose data.
func (p *Process) ApplyPatch(patch Patch, now time.Time) {
	p.Personal = patch.Personal
	p.Financial = patch.Financial
	p.RealEstate = patch.RealEstate

	if patch.Additional.Email != "" {
		p.Email = patch.Additional.Email
	}
	if patch.Additional.Phone != "" {
		p.Phone = patch.Additional.Phone
	}
	if patch.Additional.ReplaceCoBuyers {
		p.CoBuyers = patch.Additional.CoBuyers
	}
	if patch.Additional.Seller != nil {
		p.Seller = patch.Additional.Seller
	}
	if patch.Additional.Broker != nil {
		p.Broker = patch.Additional.Broker
	}
	p.UpdatedAt = now
}

// CanChangeStatusTo checks whether recording a transition to target is allowed.
// Use with ApplyStatusChange for the validate-then-mutate callback pattern.
func (p *Process) CanChangeStatusTo(target phase.ID) error {
	if target == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "target phase cannot be empty")
	}
	if target == p.Status {
		return dErrors.New(dErrors.CodeInvariantViolation, "process is already in this phase")
	}
	return nil
}

// ApplyStatusChange appends the transition to the history and moves the
// current status. History is append-only: revisits add a new event rather
// than rewriting an earlier one.
func (p *Process) ApplyStatusChange(target phase.ID, now time.Time) {
	p.StatusHistory = append(p.StatusHistory, PhaseEvent{Phase: target, Timestamp: &now})
	p.Status = target
	p.UpdatedAt = now
}

// Snapshot returns the current mergeable state consumed by the field mapper.
func (p *Process) Snapshot() Snapshot {
	return Snapshot{
		Personal:   p.Personal,
		Financial:  p.Financial,
		RealEstate: p.RealEstate,
	}
}

// Clone returns a deep copy, used by stores to keep callers from aliasing
// stored state.
func (p *Process) Clone() *Process {
	clone := *p
	clone.StatusHistory = make([]PhaseEvent, len(p.StatusHistory))
	for i, ev := range p.StatusHistory {
		clone.StatusHistory[i] = ev
		if ev.Timestamp != nil {
			ts := *ev.Timestamp
			clone.StatusHistory[i].Timestamp = &ts
		}
	}
	if p.CoBuyers != nil {
		clone.CoBuyers = append([]Person(nil), p.CoBuyers...)
	}
	if p.Seller != nil {
		seller := *p.Seller
		clone.Seller = &seller
	}
	if p.Broker != nil {
		broker := *p.Broker
		clone.Broker = &broker
	}
	return &clone
}

// Snapshot is the mergeable slice of a process handed to the field mapper.
type Snapshot struct {
	Personal   PersonalData
	Financial  FinancialData
	RealEstate RealEstateData
}
