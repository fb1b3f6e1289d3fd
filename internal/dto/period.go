package dto

import (
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
)

// CreatePeriodRequest is the payload for creating an accounting period.
type CreatePeriodRequest struct {
	Name        string `json:"name" binding:"required"`
	StartDate   string `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	MakeCurrent bool   `json:"makeCurrent"`
}

// SetStepStatusRequest is the payload for a cycle step transition.
type SetStepStatusRequest struct {
	Step   int                   `json:"step" binding:"required,min=1,max=10"`
	Status domain.CycleStepState `json:"status" binding:"required"`
	Note   string                `json:"note,omitempty"`
}

// PeriodResponse defines the data returned for a period.
type PeriodResponse struct {
	PeriodID    string     `json:"periodID"`
	Name        string     `json:"name"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsClosed    bool       `json:"isClosed"`
	IsCurrent   bool       `json:"isCurrent"`
	CurrentStep int        `json:"currentStep"`
}

// CycleStepResponse defines the data returned for one cycle step.
type CycleStepResponse struct {
	Step      int       `json:"step"`
	StepName  string    `json:"stepName"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToPeriodResponse converts a domain period to its response DTO.
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		PeriodID:    p.PeriodID,
		Name:        p.Name,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		IsClosed:    p.IsClosed,
		IsCurrent:   p.IsCurrent,
		CurrentStep: p.CurrentStep,
	}
}

// ToCycleStepResponses converts cycle step statuses to response DTOs.
func ToCycleStepResponses(steps []domain.CycleStepStatus) []CycleStepResponse {
	responses := make([]CycleStepResponse, len(steps))
	for i, s := range steps {
		responses[i] = CycleStepResponse{
			Step:      s.Step,
			StepName:  s.StepName,
			Status:    string(s.Status),
			Note:      s.Note,
			UpdatedAt: s.UpdatedAt,
		}
	}
	return responses
}
