package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dossier/internal/extraction"
	"dossier/internal/phase"
	"dossier/internal/process/models"
	"dossier/internal/process/service/mocks"
	id "dossier/pkg/domain"
	dErrors "dossier/pkg/domain-errors"
	"dossier/pkg/platform/audit"
	"dossier/pkg/platform/sentinel"
	"dossier/pkg/requestcontext"
)

type AnalyzeSuite struct {
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

func TestAnalyzeSuite(t *testing.T) {
	suite.Run(t, new(AnalyzeSuite))
}

func (s *AnalyzeSuite) SetupTest() {
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
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *AnalyzeSuite) storedProcess() *models.Process {
	process, err := models.NewProcess(id.NewProcessID(), "Maria Santos", s.now.Add(-24*time.Hour))
	s.Require().NoError(err)
	process.Personal = models.PersonalData{TaxID: "123456789"}
	return process
}

const documentURL = "https://docs.example.pt/d/abc123.pdf"

func (s *AnalyzeSuite) identityResult() extraction.Result {
	return extraction.Result{
		Type:     extraction.DocIdentity,
		Identity: &extraction.Identity{FullName: "Maria Santos"},
	}
}

func (s *AnalyzeSuite) TestAnalyzeMergesAndSaves() {
	process := s.storedProcess()
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	s.analyzer.EXPECT().Analyze(gomock.Any(), documentURL, extraction.DocIdentity).Return(s.identityResult(), nil)

	var saved *models.Process
	s.processes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Process) error {
			saved = p
			return nil
		})
	// No stale pending patch to prune.
	s.pending.EXPECT().Find(gomock.Any(), process.ID).Return(nil, sentinel.ErrNotFound)

	var actions []audit.Action
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			actions = append(actions, event.Action)
			return nil
		})

	result, err := s.svc.AnalyzeDocument(s.ctx, process.ID, documentURL, extraction.DocIdentity)

	s.Require().NoError(err)
	s.Same(saved, result)
	s.Equal("Maria Santos", result.Personal.FullName)
	s.Equal("123456789", result.Personal.TaxID, "merge keeps stored values")
	s.Equal(s.now, result.UpdatedAt)
	s.Equal([]audit.Action{audit.ActionDocumentAnalyzed, audit.ActionFieldsMerged}, actions)
}

func (s *AnalyzeSuite) TestAnalyzeSuccessPrunesStalePendingPatch() {
	process := s.storedProcess()
	stale := models.Patch{Personal: models.PersonalData{FullName: "Old"}}
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	s.analyzer.EXPECT().Analyze(gomock.Any(), documentURL, extraction.DocIdentity).Return(s.identityResult(), nil)
	s.processes.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	s.pending.EXPECT().Find(gomock.Any(), process.ID).Return(&stale, nil)
	s.pending.EXPECT().Delete(gomock.Any(), process.ID).Return(nil)
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2).Return(nil)

	_, err := s.svc.AnalyzeDocument(s.ctx, process.ID, documentURL, extraction.DocIdentity)
	s.NoError(err)
}

func (s *AnalyzeSuite) TestAnalyzeFailureReportsWithoutMerging() {
	process := s.storedProcess()
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	analysisErr := dErrors.New(dErrors.CodeUnavailable, "document analysis service unreachable")
	s.analyzer.EXPECT().Analyze(gomock.Any(), documentURL, extraction.DocPayslip).Return(extraction.Result{}, analysisErr)
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal(audit.ActionDocumentAnalyzed, event.Action)
			s.Equal("failed", event.Outcome)
			return nil
		})

	_, err := s.svc.AnalyzeDocument(s.ctx, process.ID, documentURL, extraction.DocPayslip)

	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	// No Update, no pending Save: nothing was merged.
}

func (s *AnalyzeSuite) TestFailedSaveRetainsPatch() {
	process := s.storedProcess()
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	s.analyzer.EXPECT().Analyze(gomock.Any(), documentURL, extraction.DocIdentity).Return(s.identityResult(), nil)
	s.processes.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	var retained models.Patch
	s.pending.EXPECT().Save(gomock.Any(), process.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ id.ProcessID, patch models.Patch) error {
			retained = patch
			return nil
		})

	var actions []audit.Action
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			actions = append(actions, event.Action)
			return nil
		})

	_, err := s.svc.AnalyzeDocument(s.ctx, process.ID, documentURL, extraction.DocIdentity)

	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.Contains(err.Error(), "retained", "operator must learn the extraction survived")
	s.Equal("Maria Santos", retained.Personal.FullName)
	s.Equal("123456789", retained.Personal.TaxID, "retained patch carries the full merged state")
	s.Equal([]audit.Action{audit.ActionDocumentAnalyzed, audit.ActionMergeRetained}, actions)
}

func (s *AnalyzeSuite) TestFailedSaveAndFailedRetention() {
	process := s.storedProcess()
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	s.analyzer.EXPECT().Analyze(gomock.Any(), documentURL, extraction.DocIdentity).Return(s.identityResult(), nil)
	s.processes.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	s.pending.EXPECT().Save(gomock.Any(), process.ID, gomock.Any()).Return(errors.New("redis down"))
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.svc.AnalyzeDocument(s.ctx, process.ID, documentURL, extraction.DocIdentity)

	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *AnalyzeSuite) TestRetryPendingPatch() {
	process := s.storedProcess()
	patch := models.Patch{
		Personal: models.PersonalData{TaxID: "123456789", FullName: "Maria Santos"},
	}
	s.pending.EXPECT().Find(gomock.Any(), process.ID).Return(&patch, nil)
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	s.processes.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	s.pending.EXPECT().Delete(gomock.Any(), process.ID).Return(nil)
	s.auditor.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal(audit.ActionPatchRetried, event.Action)
			return nil
		})

	updated, err := s.svc.RetryPendingPatch(s.ctx, process.ID)

	s.Require().NoError(err)
	s.Equal("Maria Santos", updated.Personal.FullName)
	s.Equal(s.now, updated.UpdatedAt)
}

func (s *AnalyzeSuite) TestRetryWithoutPendingPatch() {
	processID := id.NewProcessID()
	s.pending.EXPECT().Find(gomock.Any(), processID).Return(nil, sentinel.ErrNotFound)

	_, err := s.svc.RetryPendingPatch(s.ctx, processID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *AnalyzeSuite) TestRetrySaveFailsAgainKeepsPatch() {
	process := s.storedProcess()
	patch := models.Patch{Personal: models.PersonalData{FullName: "Maria Santos"}}
	s.pending.EXPECT().Find(gomock.Any(), process.ID).Return(&patch, nil)
	s.processes.EXPECT().FindByID(gomock.Any(), process.ID).Return(process, nil)
	s.processes.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("still down"))
	// No Delete: the patch stays retained for the next attempt.

	_, err := s.svc.RetryPendingPatch(s.ctx, process.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}
