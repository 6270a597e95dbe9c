// Package seed fills the applications table with randomized sample data.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/justsurfingit/jobtrackr/internal/database"
	"github.com/justsurfingit/jobtrackr/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SampleSize is the number of rows a seed run produces.
const SampleSize = 150

const (
	maxDaysAgo        = 180
	nextActionChance  = 0.3
	maxNextActionDays = 30
	deletedChance     = 0.1
	maxDeletedDaysAgo = 30
	insertBatchSize   = 50
)

// Status weights over models.Statuses, chosen by how long ago the application went out.
var (
	recentWeights = []float64{0.4, 0.4, 0.1, 0.05, 0.05} // under a week
	monthWeights  = []float64{0.2, 0.3, 0.3, 0.15, 0.05} // under a month
	olderWeights  = []float64{0.05, 0.1, 0.3, 0.4, 0.15}
)

// Generator produces sample applications relative to a fixed "now".
type Generator struct {
	rng *rand.Rand
	now time.Time
}

func NewGenerator(rng *rand.Rand, now time.Time) *Generator {
	return &Generator{rng: rng, now: now}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// Pick draws an index from weights by walking the cumulative sum. Weights need
// not be normalised.
func Pick(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}
	return len(weights) - 1
}

// WeightsFor returns the status weights for an application sent daysAgo days ago.
func WeightsFor(daysAgo int) []float64 {
	switch {
	case daysAgo < 7:
		return recentWeights
	case daysAgo < 30:
		return monthWeights
	default:
		return olderWeights
	}
}

// Application builds one random record.
func (g *Generator) Application() models.Application {
	today := time.Date(g.now.Year(), g.now.Month(), g.now.Day(), 0, 0, 0, 0, time.UTC)

	daysAgo := g.between(0, maxDaysAgo)
	applied := today.AddDate(0, 0, -daysAgo)

	app := models.Application{
		Company:     companies[g.rng.IntN(len(companies))],
		Role:        roles[g.rng.IntN(len(roles))],
		Status:      models.Statuses[Pick(g.rng, WeightsFor(daysAgo))],
		DateApplied: models.DateOf(applied),
	}

	if g.rng.Float64() < nextActionChance {
		next := models.DateOf(today.AddDate(0, 0, g.between(1, maxNextActionDays)))
		app.NextActionDate = &next
	}

	if g.rng.Float64() < deletedChance {
		app.DeletedAt = gorm.DeletedAt{
			Time:  g.now.UTC().AddDate(0, 0, -g.between(1, maxDeletedDaysAgo)),
			Valid: true,
		}
	}

	app.CreatedAt = applied.
		AddDate(0, 0, g.between(0, 2)).
		Add(time.Duration(g.between(9, 17)) * time.Hour)

	location := locations[g.rng.IntN(len(locations))]
	app.Location = &location
	app.URL = urls[g.rng.IntN(len(urls))]
	app.Notes = notes[g.rng.IntN(len(notes))]
	return app
}

// Generate builds n random records.
func (g *Generator) Generate(n int) []models.Application {
	apps := make([]models.Application, 0, n)
	for i := 0; i < n; i++ {
		apps = append(apps, g.Application())
	}
	return apps
}

// Summary describes the table after a seed run.
type Summary struct {
	Total   int64
	Deleted int64
	// ByStatus follows models.Statuses order; statuses with no rows are omitted.
	ByStatus []StatusCount
}

type StatusCount struct {
	Status models.Status
	Count  int64
}

// Run replaces every row in the table with SampleSize generated records,
// rebuilds the secondary indexes and reports what ended up in the table.
func Run(ctx context.Context, db *gorm.DB, g *Generator, log *zap.Logger) (*Summary, error) {
	apps := g.Generate(SampleSize)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().Where("1 = 1").Delete(&models.Application{})
		if res.Error != nil {
			return fmt.Errorf("clear applications: %w", res.Error)
		}
		log.Info("cleared existing rows", zap.Int64("rows", res.RowsAffected))

		if err := tx.CreateInBatches(&apps, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert applications: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := database.RebuildIndexes(db.WithContext(ctx), database.SeedIndexes...); err != nil {
		return nil, err
	}
	log.Info("rebuilt indexes", zap.Strings("indexes", database.SeedIndexes))

	return Summarize(ctx, db)
}

// Summarize counts all rows, soft-deleted ones included.
func Summarize(ctx context.Context, db *gorm.DB) (*Summary, error) {
	q := db.WithContext(ctx).Unscoped().Model(&models.Application{})
	s := &Summary{}

	if err := q.Session(&gorm.Session{}).Count(&s.Total).Error; err != nil {
		return nil, err
	}
	if err := q.Session(&gorm.Session{}).Where("deleted_at IS NOT NULL").Count(&s.Deleted).Error; err != nil {
		return nil, err
	}

	var rows []StatusCount
	err := q.Session(&gorm.Session{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.Status]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	for _, st := range models.Statuses {
		if n, ok := counts[st]; ok {
			s.ByStatus = append(s.ByStatus, StatusCount{Status: st, Count: n})
		}
	}
	return s, nil
}
