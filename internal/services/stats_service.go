package services

import (
	"context"
	"math"
	"time"

	"github.com/justsurfingit/jobtrackr/internal/dtos"
	"github.com/justsurfingit/jobtrackr/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
	// Now decides which calendar day counts as "today".
	Now func() time.Time
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		DB:  db,
		Now: time.Now,
	}
}

type statsRow struct {
	Status         models.Status
	NextActionDate *datatypes.Date
}

// Stats aggregates over active applications only.
func (s *StatsService) Stats(ctx context.Context) (*dtos.StatsResponse, error) {
	var rows []statsRow
	err := s.DB.WithContext(ctx).
		Model(&models.Application{}).
		Select("status", "next_action_date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	today := models.DateOf(s.Now())
	counts := make(map[string]int)
	dueToday := 0
	for _, r := range rows {
		counts[string(r.Status)]++
		if r.NextActionDate != nil && models.SameDay(*r.NextActionDate, today) {
			dueToday++
		}
	}

	total := len(rows)
	responded := counts[string(models.StatusInterview)] +
		counts[string(models.StatusOffer)] +
		counts[string(models.StatusRejected)]

	return &dtos.StatsResponse{
		Total:        total,
		Counts:       counts,
		ResponseRate: ResponseRate(responded, total),
		DueToday:     dueToday,
		SavedJobs:    counts[string(models.StatusSaved)],
		Interviews:   counts[string(models.StatusInterview)],
	}, nil
}

// ResponseRate is responded/total rounded to four decimals, or 0 when total is 0.
func ResponseRate(responded, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(responded)/float64(total)*10000) / 10000
}
