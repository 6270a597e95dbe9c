package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/justsurfingit/jobtrackr/internal/dtos"
	"github.com/justsurfingit/jobtrackr/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
	// Now is the clock used for soft-delete timestamps.
	Now func() time.Time
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB:  db,
		Now: time.Now,
	}
}

func (s *ApplicationService) CreateApplication(ctx context.Context, req *dtos.ApplicationCreateRequest) (*models.Application, error) {
	dateApplied, err := models.ParseDate(req.DateApplied)
	if err != nil {
		return nil, fmt.Errorf("date_applied: %w", err)
	}

	app := &models.Application{
		Company:     req.Company,
		Role:        req.Role,
		Location:    req.Location,
		URL:         req.URL,
		Status:      models.StatusApplied,
		DateApplied: dateApplied,
		Notes:       req.Notes,
	}
	if req.Status != "" {
		app.Status = models.Status(req.Status)
	}
	if req.NextActionDate != nil {
		next, err := models.ParseDate(*req.NextActionDate)
		if err != nil {
			return nil, fmt.Errorf("next_action_date: %w", err)
		}
		app.NextActionDate = &next
	}

	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// ListApplications returns one page of matching applications and the total
// number of matches before pagination.
func (s *ApplicationService) ListApplications(ctx context.Context, q *dtos.ApplicationListQuery) ([]models.Application, int64, error) {
	query := s.DB.WithContext(ctx).Model(&models.Application{})
	if q.IncludeDeleted {
		query = query.Unscoped()
	}

	if term := strings.TrimSpace(q.Q); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where("(LOWER(company) LIKE ? OR LOWER(role) LIKE ?)", like, like)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.HasLink != nil {
		if *q.HasLink {
			query = query.Where("url IS NOT NULL AND url <> ''")
		} else {
			query = query.Where("(url IS NULL OR url = '')")
		}
	}

	// Session lets the count and the page query share the filters.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "date_applied DESC, created_at DESC"
	if q.SortOrder == "asc" {
		order = "date_applied ASC, created_at ASC"
	}

	var items []models.Application
	err := query.Order(order).Limit(q.Limit).Offset(q.Offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateStatus changes the status of an active application.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uint, status models.Status) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&app, id).Error; err != nil {
			return notFound(err, id)
		}
		if err := tx.Model(&app).Update("status", status).Error; err != nil {
			return err
		}
		app.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// SoftDelete marks an active application as deleted.
func (s *ApplicationService) SoftDelete(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&app, id).Error; err != nil {
			return notFound(err, id)
		}
		deletedAt := gorm.DeletedAt{Time: s.Now().UTC(), Valid: true}
		if err := tx.Model(&app).Update("deleted_at", deletedAt).Error; err != nil {
			return err
		}
		app.DeletedAt = deletedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Restore brings a soft-deleted application back into the active set.
func (s *ApplicationService) Restore(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().First(&app, id).Error; err != nil {
			return notFound(err, id)
		}
		if !app.DeletedAt.Valid {
			return fmt.Errorf("restore application %d: %w", id, ErrInvalidState)
		}
		if err := tx.Unscoped().Model(&app).Update("deleted_at", nil).Error; err != nil {
			return err
		}
		app.DeletedAt = gorm.DeletedAt{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func notFound(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("application %d: %w", id, ErrNotFound)
	}
	return err
}
