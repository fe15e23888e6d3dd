// Package timeline reconstructs a consistent, ordered phase timeline from an
// unordered, possibly duplicated, possibly incomplete status-change history.
//
// The reconstructor derives a view; it never mutates the history. Completion
// status trusts what actually happened over the catalog's nominal order,
// because real workflows revisit and skip phases. Display order still follows
// the catalog, which reads naturally for operators scanning a fixed pipeline.
package timeline

import (
	"sort"
	"time"

	"dossier/internal/phase"
	"dossier/internal/process/models"
)

// Entry is one reconstructed, deduplicated timeline record.
type Entry struct {
	Phase       phase.ID   `json:"phase"`
	Label       string     `json:"label"`
	Date        *time.Time `json:"date,omitempty"`
	IsCurrent   bool       `json:"is_current"`
	IsCompleted bool       `json:"is_completed"`
	// DaysInPhase is the whole-day span until the next recorded transition.
	// Nil for the still-open current phase and for entries whose duration
	// cannot be computed from the recorded timestamps.
	DaysInPhase *int `json:"days_in_phase,omitempty"`
}

// Reconstruct derives the ordered timeline view for a process.
//
// now is an explicit parameter: it bounds the elapsed time of the last
// recorded phase, and passing it in keeps the function deterministic.
// Identical inputs always produce identical output.
func Reconstruct(history []models.PhaseEvent, current phase.ID, catalog phase.Catalog, now time.Time) []Entry {
	current = catalog.Canonical(current)

	var entries []Entry
	if len(history) == 0 {
		entries = synthesizeProgression(current, catalog)
	} else {
		entries = fromHistory(history, current, catalog, now)
	}

	sortByCatalogOrder(entries, catalog)
	return entries
}

// synthesizeProgression builds the normal pipeline up to and including the
// current phase when no history was recorded. Terminal phases never appear in
// the synthesized chain unless they are the current phase itself.
func synthesizeProgression(current phase.ID, catalog phase.Catalog) []Entry {
	currentDef, known := catalog.Lookup(current)
	if !known {
		// Nothing to synthesize around an unknown phase; render it alone.
		return []Entry{{Phase: current, Label: catalog.LabelOf(current), IsCurrent: true}}
	}

	var entries []Entry
	for _, def := range catalog.Definitions() {
		switch {
		case def.ID == current:
			entries = append(entries, Entry{Phase: def.ID, Label: def.Label, IsCurrent: true})
		case !def.Terminal && def.Order <= currentDef.Order:
			entries = append(entries, Entry{Phase: def.ID, Label: def.Label, IsCompleted: true})
		}
	}
	return entries
}

// fromHistory builds the timeline from recorded events: chronological sort,
// first-seen dedup, duration annotation, completion from the record.
func fromHistory(history []models.PhaseEvent, current phase.ID, catalog phase.Catalog, now time.Time) []Entry {
	events := make([]models.PhaseEvent, len(history))
	for i, ev := range history {
		events[i] = models.PhaseEvent{Phase: catalog.Canonical(ev.Phase), Timestamp: ev.Timestamp}
	}

	// Chronological order. Events without a timestamp sort after all dated
	// ones, keeping their original encounter order; the stored order is the
	// only sequencing signal they carry.
	sort.SliceStable(events, func(i, j int) bool {
		ti, tj := events[i].Timestamp, events[j].Timestamp
		if ti == nil || tj == nil {
			return tj == nil && ti != nil
		}
		return ti.Before(*tj)
	})

	// Keep the first occurrence of each phase.
	seen := make(map[phase.ID]struct{}, len(events))
	kept := events[:0]
	for _, ev := range events {
		if _, dup := seen[ev.Phase]; dup {
			continue
		}
		seen[ev.Phase] = struct{}{}
		kept = append(kept, ev)
	}

	entries := make([]Entry, 0, len(kept)+1)
	haveCurrent := false
	for i, ev := range kept {
		entry := Entry{
			Phase: ev.Phase,
			Label: catalog.LabelOf(ev.Phase),
			Date:  ev.Timestamp,
		}
		if ev.Phase == current {
			// The current phase is still open: no duration, not completed.
			entry.IsCurrent = true
			haveCurrent = true
		} else {
			entry.IsCompleted = true
			entry.DaysInPhase = daysUntilNext(kept, i, now)
		}
		entries = append(entries, entry)
	}

	// The transition into the current phase was never recorded.
	if !haveCurrent {
		entries = append(entries, Entry{
			Phase:     current,
			Label:     catalog.LabelOf(current),
			IsCurrent: true,
		})
	}

	return entries
}

// daysUntilNext computes the whole-day span between the i-th kept event and
// the next one in the chronological walk; the last event is bounded by now.
// Returns nil when either endpoint has no timestamp.
func daysUntilNext(kept []models.PhaseEvent, i int, now time.Time) *int {
	start := kept[i].Timestamp
	if start == nil {
		return nil
	}
	end := now
	if i+1 < len(kept) {
		next := kept[i+1].Timestamp
		if next == nil {
			return nil
		}
		end = *next
	}
	days := int(end.Sub(*start).Hours() / 24)
	return &days
}

// sortByCatalogOrder orders entries for display: catalog order ascending,
// unknown phases after all known ones, ties kept in walk order.
func sortByCatalogOrder(entries []Entry, catalog phase.Catalog) {
	sort.SliceStable(entries, func(i, j int) bool {
		return catalog.OrderOf(entries[i].Phase) < catalog.OrderOf(entries[j].Phase)
	})
}
