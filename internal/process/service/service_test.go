package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dossier/internal/phase"
	"dossier/internal/process/models"
	"dossier/internal/process/service/mocks"
	id "dossier/pkg/domain"
	dErrors "dossier/pkg/domain-errors"
	"dossier/pkg/platform/audit"
	"dossier/pkg/platform/sentinel"
	"dossier/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	processes *mocks.MockProcessStore
	analyzer  *mocks.MockDocumentAnalyzer
	pending   *mocks.MockPendingPatchStore
	auditor   *mocks.MockAuditPublisher

	svc *Service
	ctx context.Context
	now time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.processes = mocks.NewMockProcessStore(s.ctrl)
	s.analyzer = mocks.NewMockDocumentAnalyzer(s.ctrl)
	s.pending = mocks.NewMockPendingPatchStore(s.ctrl)
	s.auditor = mocks.NewMockAuditPublisher(s.ctrl)

	svc, err := New(s.processes, s.analyzer, s.pending, phase.Default(),
		WithAuditPublisher(s.auditor),
	)
	s.Require().NoError(err)
	s.svc = svc

	s.now = time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), s.now)
	ctx = requestcontext.WithOperator(ctx, "op-17")
	s.ctx = requestcontext.WithRequestID(ctx, "req-abc")
}

func (s *ServiceSuite) storedProcess() *models.Process {
	process, err := models.NewProcess(id.NewProcessID(), "Maria Santos", s.now.Add(-48*time.Hour))
	s.Require().NoError(err)
	return process
}

func (s *ServiceSuite) TestNewRequiresDependencies() {
	_, err := New(nil, s.analyzer, s.pending, phase.Default())
	s.Error(err)

	_, err = New(s.processes, nil, s.pending, phase.Default())
	s.Error(err)

	_, err = New(s.processes, s.analyzer, nil, phase.Default())
	s.Error(err)
}

func (s *ServiceSuite) TestCreateProcess() {
	var created *models.Process
	s.processes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Process) error {
			created = p
			return nil
		})
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal(audit.ActionProcessCreated, event.Action)
			s.Equal("op-17", event.Operator)
			s.Equal("req-abc", event.RequestID)
			s.Equal(s.now, event.Timestamp)
			return nil
		})

	process, err := s.svc.CreateProcess(s.ctx, "Maria Santos")

	s.Require().NoError(err)
	s.Same(created, process)
	s.Equal(phase.Proposal, process.Status)
	s.Equal(s.now, process.CreatedAt, "creation uses the request-scoped clock")
}

func (s *ServiceSuite) TestCreateProcessValidationShortCircuitsStore() {
	_, err := s.svc.CreateProcess(s.ctx, "  ")
	s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func (s *ServiceSuite) TestCreateProcessConflict() {
	s.processes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sentinel.ErrConflict)

	_, err := s.svc.CreateProcess(s.ctx, "Maria Santos")
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestGetProcessNotFound() {
	processID := id.NewProcessID()
	s.processes.EXPECT().FindByID(gomock.Any(), processID).Return(nil, sentinel.ErrNotFound)

	_, err := s.svc.GetProcess(s.ctx, processID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestChangeStatusCanonicalizesAlias() {
	process := s.storedProcess()
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	s.processes.EXPECT().Update(gomock.Any(), process).Return(nil)
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal(audit.ActionStatusChanged, event.Action)
			s.Equal("bank_review", event.Subject)
			return nil
		})

	updated, err := s.svc.ChangeStatus(s.ctx, process.ID, "in_bank_review")

	s.Require().NoError(err)
	s.Equal(phase.BankReview, updated.Status)
	s.Require().Len(updated.StatusHistory, 2)
	s.Equal(phase.BankReview, updated.StatusHistory[1].Phase)
	s.Equal(s.now, *updated.StatusHistory[1].Timestamp)
}

func (s *ServiceSuite) TestChangeStatusSamePhaseConflicts() {
	process := s.storedProcess()
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)

	_, err := s.svc.ChangeStatus(s.ctx, process.ID, phase.Proposal)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	// Alias of the current phase is the same no-op.
	clone := s.storedProcess()
	clone.Status = phase.BankReview
	s.processes.EXPECT().FindByID(gomock.Any(), clone.ID).Return(clone, nil)
	_, err = s.svc.ChangeStatus(s.ctx, clone.ID, "in_bank_review")
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestChangeStatusUnknownPhaseIsTolerated() {
	process := s.storedProcess()
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	s.processes.EXPECT().Update(gomock.Any(), process).Return(nil)
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := s.svc.ChangeStatus(s.ctx, process.ID, "exotic_phase")

	s.Require().NoError(err)
	s.Equal(phase.ID("exotic_phase"), updated.Status)
}

func (s *ServiceSuite) TestChangeStatusAuditFailureDoesNotFailOperation() {
	process := s.storedProcess()
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	s.processes.EXPECT().Update(gomock.Any(), process).Return(nil)
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("buffer full"))

	_, err := s.svc.ChangeStatus(s.ctx, process.ID, phase.Documentation)
	s.NoError(err, "audit is best-effort")
}
