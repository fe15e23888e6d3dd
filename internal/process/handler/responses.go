package handler

import (
	"time"

	"dossier/internal/process/models"
	"dossier/internal/process/service"
	"dossier/internal/timeline"
)

// ProcessResponse is the HTTP shape of a process aggregate.
type ProcessResponse struct {
	ID            string                `json:"id"`
	ClientName    string                `json:"client_name"`
	Status        string                `json:"status"`
	StatusHistory []PhaseEventResponse  `json:"status_history"`
	Personal      models.PersonalData   `json:"personal_data"`
	Financial     models.FinancialData  `json:"financial_data"`
	RealEstate    models.RealEstateData `json:"real_estate_data"`
	Credit        models.CreditData     `json:"credit_data"`
	CoBuyers      []models.Person       `json:"co_buyers,omitempty"`
	Seller        *models.Person        `json:"seller,omitempty"`
	Broker        *models.Broker        `json:"broker,omitempty"`
	Email         string                `json:"email,omitempty"`
	Phone         string                `json:"phone,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// PhaseEventResponse is one status-history entry.
type PhaseEventResponse struct {
	Phase     string     `json:"phase"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// FromProcess converts a domain process to an HTTP response.
func FromProcess(process *models.Process) *ProcessResponse {
	history := make([]PhaseEventResponse, 0, len(process.StatusHistory))
	for _, ev := range process.StatusHistory {
		history = append(history, PhaseEventResponse{
			Phase:     string(ev.Phase),
			Timestamp: ev.Timestamp,
		})
	}
	return &ProcessResponse{
		ID:            process.ID.String(),
		ClientName:    process.ClientName,
		Status:        string(process.Status),
		StatusHistory: history,
		Personal:      process.Personal,
		Financial:     process.Financial,
		RealEstate:    process.RealEstate,
		Credit:        process.Credit,
		CoBuyers:      process.CoBuyers,
		Seller:        process.Seller,
		Broker:        process.Broker,
		Email:         process.Email,
		Phone:         process.Phone,
		CreatedAt:     process.CreatedAt,
		UpdatedAt:     process.UpdatedAt,
	}
}

// TimelineResponse is the HTTP shape of a reconstructed timeline.
type TimelineResponse struct {
	Entries          []TimelineEntryResponse `json:"entries"`
	CompletedPhases  int                     `json:"completed_phases"`
	TotalTrackedDays int                     `json:"total_tracked_days"`
}

// TimelineEntryResponse is one reconstructed timeline entry.
type TimelineEntryResponse struct {
	Phase       string     `json:"phase"`
	Label       string     `json:"label"`
	Date        *time.Time `json:"date,omitempty"`
	IsCurrent   bool       `json:"is_current"`
	IsCompleted bool       `json:"is_completed"`
	DaysInPhase *int       `json:"days_in_phase,omitempty"`
}

// FromTimelineView converts a timeline view to an HTTP response.
func FromTimelineView(view *service.TimelineView) *TimelineResponse {
	entries := make([]TimelineEntryResponse, 0, len(view.Entries))
	for _, e := range view.Entries {
		entries = append(entries, fromTimelineEntry(e))
	}
	return &TimelineResponse{
		Entries:          entries,
		CompletedPhases:  view.CompletedPhases,
		TotalTrackedDays: view.TotalTrackedDays,
	}
}

func fromTimelineEntry(e timeline.Entry) TimelineEntryResponse {
	return TimelineEntryResponse{
		Phase:       string(e.Phase),
		Label:       e.Label,
		Date:        e.Date,
		IsCurrent:   e.IsCurrent,
		IsCompleted: e.IsCompleted,
		DaysInPhase: e.DaysInPhase,
	}
}
