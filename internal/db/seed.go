package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"insights-api/internal/core/domain"
)

// Seed inserts campaigns into an empty or partially filled campaigns table.
// Rows whose id already exists are left untouched, so Seed is idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool, campaigns []domain.Campaign) error {
	batch := &pgx.Batch{}
	for _, c := range campaigns {
		date, err := time.Parse(time.DateOnly, c.Date)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", c.ID, err)
		}
		batch.Queue(`INSERT INTO campaigns
    (id, name, clicks, impressions, ctr, cpc, spend, conversions, revenue, report_date)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Clicks, c.Impressions, c.CTR, c.CPC, c.Spend, c.Conversions, c.Revenue, date)
	}

	br := db.SendBatch(ctx, batch)
	defer br.Close()
	for _, c := range campaigns {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("seed campaign %d: %w", c.ID, err)
		}
	}
	return nil
}
