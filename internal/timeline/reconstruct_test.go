package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"dossier/internal/phase"
	"dossier/internal/process/models"
)

type ReconstructSuite struct {
	suite.Suite

	catalog phase.Catalog
	now     time.Time
}

func TestReconstructSuite(t *testing.T) {
	suite.Run(t, new(ReconstructSuite))
}

func (s *ReconstructSuite) SetupTest() {
	s.catalog = phase.Default()
	s.now = time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
}

func ts(day int) *time.Time {
	t := time.Date(2026, 8, day, 9, 0, 0, 0, time.UTC)
	return &t
}

func (s *ReconstructSuite) phases(entries []Entry) []phase.ID {
	ids := make([]phase.ID, len(entries))
	for i, e := range entries {
		ids[i] = e.Phase
	}
	return ids
}

func (s *ReconstructSuite) TestEmptyHistorySynthesizesProgression() {
	entries := Reconstruct(nil, phase.BankReview, s.catalog, s.now)

	s.Equal([]phase.ID{phase.Proposal, phase.Documentation, phase.BankReview}, s.phases(entries))
	s.True(entries[0].IsCompleted)
	s.True(entries[1].IsCompleted)
	s.True(entries[2].IsCurrent)
	s.False(entries[2].IsCompleted)
	for _, e := range entries {
		s.Nil(e.Date, "synthesized entries carry no dates")
		s.Nil(e.DaysInPhase)
	}
}

func (s *ReconstructSuite) TestEmptyHistoryTerminalCurrentStandsAlone() {
	entries := Reconstruct(nil, phase.Rejected, s.catalog, s.now)

	// Terminal phases never appear in a synthesized chain except as the
	// current entry itself; every non-terminal phase precedes order 90.
	s.Equal([]phase.ID{
		phase.Proposal, phase.Documentation, phase.BankReview, phase.PreApproved,
		phase.Appraisal, phase.Approved, phase.ContractSigned, phase.Deed,
		phase.Rejected,
	}, s.phases(entries))
	last := entries[len(entries)-1]
	s.True(last.IsCurrent)
	s.False(last.IsCompleted)
}

func (s *ReconstructSuite) TestEmptyHistoryUnknownCurrentRendersSingleEntry() {
	entries := Reconstruct(nil, "mystery_phase", s.catalog, s.now)

	s.Require().Len(entries, 1)
	s.Equal(phase.ID("mystery_phase"), entries[0].Phase)
	s.Equal(phase.FallbackLabel, entries[0].Label)
	s.True(entries[0].IsCurrent)
}

func (s *ReconstructSuite) TestDuplicatesKeepFirstOccurrence() {
	history := []models.PhaseEvent{
		{Phase: phase.Documentation, Timestamp: ts(5)},
		{Phase: phase.Proposal, Timestamp: ts(1)},
		{Phase: phase.Documentation, Timestamp: ts(8)},
	}

	entries := Reconstruct(history, phase.Documentation, s.catalog, s.now)

	s.Equal([]phase.ID{phase.Proposal, phase.Documentation}, s.phases(entries))
	s.Require().NotNil(entries[1].Date)
	s.Equal(*ts(5), *entries[1].Date, "first chronological occurrence wins")
	s.True(entries[1].IsCurrent)
}

func (s *ReconstructSuite) TestUnorderedHistorySortsChronologically() {
	history := []models.PhaseEvent{
		{Phase: phase.BankReview, Timestamp: ts(10)},
		{Phase: phase.Proposal, Timestamp: ts(1)},
		{Phase: phase.Documentation, Timestamp: ts(4)},
	}

	entries := Reconstruct(history, phase.BankReview, s.catalog, s.now)

	s.Equal([]phase.ID{phase.Proposal, phase.Documentation, phase.BankReview}, s.phases(entries))

	// Durations follow the chronological walk, whole days only.
	s.Require().NotNil(entries[0].DaysInPhase)
	s.Equal(3, *entries[0].DaysInPhase)
	s.Require().NotNil(entries[1].DaysInPhase)
	s.Equal(6, *entries[1].DaysInPhase)
	s.Nil(entries[2].DaysInPhase, "current phase is still open")
}

func (s *ReconstructSuite) TestLastCompletedPhaseBoundedByNow() {
	history := []models.PhaseEvent{
		{Phase: phase.Proposal, Timestamp: ts(1)},
		{Phase: phase.Documentation, Timestamp: ts(10)},
	}

	// Current phase was never recorded, so documentation is the last kept
	// event and its span runs to now (2026-08-20 10:00).
	entries := Reconstruct(history, phase.BankReview, s.catalog, s.now)

	s.Equal([]phase.ID{phase.Proposal, phase.Documentation, phase.BankReview}, s.phases(entries))
	s.Require().NotNil(entries[1].DaysInPhase)
	s.Equal(10, *entries[1].DaysInPhase)

	synthetic := entries[2]
	s.True(synthetic.IsCurrent)
	s.Nil(synthetic.Date, "unrecorded transition has no date")
	s.Nil(synthetic.DaysInPhase)
}

func (s *ReconstructSuite) TestMissingTimestampsSortLastAndYieldNilDurations() {
	history := []models.PhaseEvent{
		{Phase: phase.Documentation, Timestamp: nil},
		{Phase: phase.Proposal, Timestamp: ts(1)},
	}

	entries := Reconstruct(history, phase.Documentation, s.catalog, s.now)

	s.Equal([]phase.ID{phase.Proposal, phase.Documentation}, s.phases(entries))
	s.Nil(entries[0].DaysInPhase, "span into an undated event cannot be computed")
	s.Nil(entries[1].Date)
	s.True(entries[1].IsCurrent)
}

func (s *ReconstructSuite) TestAliasHistoryEquivalentToCanonical() {
	aliased := []models.PhaseEvent{
		{Phase: "in_bank_review", Timestamp: ts(3)},
		{Phase: phase.Proposal, Timestamp: ts(1)},
	}
	canonical := []models.PhaseEvent{
		{Phase: phase.BankReview, Timestamp: ts(3)},
		{Phase: phase.Proposal, Timestamp: ts(1)},
	}

	fromAlias := Reconstruct(aliased, "in_bank_review", s.catalog, s.now)
	fromCanonical := Reconstruct(canonical, phase.BankReview, s.catalog, s.now)

	s.Equal(fromCanonical, fromAlias)
	s.Equal(phase.BankReview, fromAlias[1].Phase)
	s.Equal("Bank review", fromAlias[1].Label)
}

func (s *ReconstructSuite) TestAliasAndCanonicalDuplicatesCollapse() {
	history := []models.PhaseEvent{
		{Phase: phase.Proposal, Timestamp: ts(1)},
		{Phase: "valuation", Timestamp: ts(5)},
		{Phase: phase.Appraisal, Timestamp: ts(7)},
	}

	entries := Reconstruct(history, phase.Appraisal, s.catalog, s.now)

	s.Equal([]phase.ID{phase.Proposal, phase.Appraisal}, s.phases(entries))
	s.Equal(*ts(5), *entries[1].Date)
}

func (s *ReconstructSuite) TestCurrentNotInHistoryGetsSyntheticEntry() {
	history := []models.PhaseEvent{
		{Phase: phase.Proposal, Timestamp: ts(1)},
	}

	entries := Reconstruct(history, phase.Appraisal, s.catalog, s.now)

	s.Equal([]phase.ID{phase.Proposal, phase.Appraisal}, s.phases(entries))
	s.True(entries[1].IsCurrent)
	s.Nil(entries[1].Date)

	// Skipped phases are not invented: documentation and bank review were
	// never visited and do not appear.
	for _, e := range entries {
		s.NotEqual(phase.Documentation, e.Phase)
		s.NotEqual(phase.BankReview, e.Phase)
	}
}

func (s *ReconstructSuite) TestUnknownPhasesRenderWithFallbackAfterKnownOnes() {
	history := []models.PhaseEvent{
		{Phase: "legacy_step", Timestamp: ts(2)},
		{Phase: phase.Proposal, Timestamp: ts(1)},
	}

	entries := Reconstruct(history, phase.Proposal, s.catalog, s.now)

	s.Equal([]phase.ID{phase.Proposal, "legacy_step"}, s.phases(entries))
	s.Equal(phase.FallbackLabel, entries[1].Label)
	s.True(entries[1].IsCompleted)
}

// TestDeterminism feeds the same input twice and expects identical output:
// now is a parameter, so nothing inside may consult the wall clock.
func (s *ReconstructSuite) TestDeterminism() {
	history := []models.PhaseEvent{
		{Phase: phase.Documentation, Timestamp: ts(4)},
		{Phase: phase.Proposal, Timestamp: ts(1)},
		{Phase: "signed", Timestamp: nil},
	}

	first := Reconstruct(history, phase.ContractSigned, s.catalog, s.now)
	second := Reconstruct(history, phase.ContractSigned, s.catalog, s.now)

	s.Equal(first, second)
}

func (s *ReconstructSuite) TestInputHistoryNotMutated() {
	first := ts(9)
	history := []models.PhaseEvent{
		{Phase: "valuation", Timestamp: first},
		{Phase: phase.Proposal, Timestamp: ts(1)},
	}

	_ = Reconstruct(history, phase.Appraisal, s.catalog, s.now)

	s.Equal(phase.ID("valuation"), history[0].Phase, "normalization must not write through")
	s.Equal(first, history[0].Timestamp)
	s.Equal(phase.ID(phase.Proposal), history[1].Phase)
}

func TestDaysUntilNextWholeDayTruncation(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	almostTwoDays := time.Date(2026, 8, 3, 8, 59, 0, 0, time.UTC)
	kept := []models.PhaseEvent{
		{Phase: phase.Proposal, Timestamp: &start},
		{Phase: phase.Documentation, Timestamp: &almostTwoDays},
	}

	days := daysUntilNext(kept, 0, time.Time{})
	require.NotNil(t, days)
	require.Equal(t, 1, *days, "partial days truncate, never round up")
}
