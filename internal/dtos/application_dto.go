package dtos

import (
	"time"

	"github.com/justsurfingit/jobtrackr/internal/models"
)

type ApplicationCreateRequest struct {
	Company string `json:"company" binding:"required,max=200"`
	Role    string `json:"role" binding:"required,max=200"`

	// Optional Fields
	Location       *string `json:"location" binding:"omitempty,max=200"`
	URL            *string `json:"url" binding:"omitempty,max=500"`
	Status         string  `json:"status" binding:"omitempty,oneof=saved applied interview rejected offer"` // Defaults to "applied" if empty
	DateApplied    string  `json:"date_applied" binding:"required,datetime=2006-01-02"`
	NextActionDate *string `json:"next_action_date" binding:"omitempty,datetime=2006-01-02"`
	Notes          *string `json:"notes"`
}

type ApplicationStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=saved applied interview rejected offer"`
}

// ApplicationURI binds the {id} path segment.
type ApplicationURI struct {
	ID uint `uri:"id" binding:"required"`
}

type ApplicationListQuery struct {
	Q              string `form:"q"`
	Status         string `form:"status" binding:"omitempty,oneof=saved applied interview rejected offer"`
	HasLink        *bool  `form:"has_link"`
	SortOrder      string `form:"sort_order,default=desc" binding:"oneof=asc desc"`
	Limit          int    `form:"limit,default=20" binding:"min=1,max=1000"`
	Offset         int    `form:"offset,default=0" binding:"min=0"`
	IncludeDeleted bool   `form:"include_deleted,default=false"`
}

type ApplicationResponse struct {
	ID             uint       `json:"id"`
	Company        string     `json:"company"`
	Role           string     `json:"role"`
	Location       *string    `json:"location"`
	URL            *string    `json:"url"`
	Status         string     `json:"status"`
	DateApplied    string     `json:"date_applied"`
	NextActionDate *string    `json:"next_action_date"`
	Notes          *string    `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	DeletedAt      *time.Time `json:"deleted_at"`
}

type ApplicationListResponse struct {
	Items []ApplicationResponse `json:"items"`
	Total int64                 `json:"total"`
}

type StatsResponse struct {
	Total        int            `json:"total"`
	Counts       map[string]int `json:"counts"`
	ResponseRate float64        `json:"response_rate"`
	DueToday     int            `json:"due_today"`
	SavedJobs    int            `json:"saved_jobs"`
	Interviews   int            `json:"interviews"`
}

func NewApplicationResponse(a *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          a.ID,
		Company:     a.Company,
		Role:        a.Role,
		Location:    a.Location,
		URL:         a.URL,
		Status:      string(a.Status),
		DateApplied: models.FormatDate(a.DateApplied),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
	}
	if a.NextActionDate != nil {
		s := models.FormatDate(*a.NextActionDate)
		resp.NextActionDate = &s
	}
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		resp.DeletedAt = &t
	}
	return resp
}

func NewApplicationListResponse(items []models.Application, total int64) ApplicationListResponse {
	out := ApplicationListResponse{
		Items: make([]ApplicationResponse, 0, len(items)),
		Total: total,
	}
	for i := range items {
		out.Items = append(out.Items, NewApplicationResponse(&items[i]))
	}
	return out
}
