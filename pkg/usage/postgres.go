package usage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterPostgresCounters wires COUNT(*) queries for every resource into
// the registry. Lead counters are windowed by creation time at UTC day and
// month boundaries; all other counters are plain per-workspace totals.
func RegisterPostgresCounters(registry *Registry, pool *pgxpool.Pool) {
	registry.Register(ResourceDailyLeads, windowedCounter(pool,
		`SELECT COUNT(*) FROM leads WHERE workspace_id = $1 AND created_at >= $2`, DayStart))
	registry.Register(ResourceMonthlyLeads, windowedCounter(pool,
		`SELECT COUNT(*) FROM leads WHERE workspace_id = $1 AND created_at >= $2`, MonthStart))
	registry.Register(ResourceTeamMembers, totalCounter(pool,
		`SELECT COUNT(*) FROM workspace_members WHERE workspace_id = $1`))
	registry.Register(ResourceCampaigns, totalCounter(pool,
		`SELECT COUNT(*) FROM campaigns WHERE workspace_id = $1`))
	registry.Register(ResourceTemplates, totalCounter(pool,
		`SELECT COUNT(*) FROM templates WHERE workspace_id = $1`))
	registry.Register(ResourceEmailAccounts, totalCounter(pool,
		`SELECT COUNT(*) FROM email_accounts WHERE workspace_id = $1`))
}

func totalCounter(pool *pgxpool.Pool, query string) CounterFunc {
	return func(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
		var n int64
		if err := pool.QueryRow(ctx, query, workspaceID).Scan(&n); err != nil {
			return 0, err
		}
		return n, nil
	}
}

func windowedCounter(pool *pgxpool.Pool, query string, boundary func(time.Time) time.Time) CounterFunc {
	return func(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
		var n int64
		since := boundary(time.Now().UTC())
		if err := pool.QueryRow(ctx, query, workspaceID, since).Scan(&n); err != nil {
			return 0, err
		}
		return n, nil
	}
}
