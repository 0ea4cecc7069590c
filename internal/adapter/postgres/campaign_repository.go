package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"insights-api/internal/core/domain"
)

const dateLayout = "2006-01-02"

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListCampaigns returns every campaign ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	const q = `
        SELECT id, name, clicks, impressions, ctr, cpc, spend, conversions, revenue, report_date
        FROM campaigns
        ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c    domain.Campaign
			date time.Time
		)
		err := row.Scan(
			&c.ID,
			&c.Name,
			&c.Clicks,
			&c.Impressions,
			&c.CTR,
			&c.CPC,
			&c.Spend,
			&c.Conversions,
			&c.Revenue,
			&date,
		)
		c.Date = date.Format(dateLayout)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return out, nil
}
