// Package pg provides PostgreSQL connectivity: pgx pool setup with retry,
// a health probe, and goose migration application routed through the
// application logger.
package pg
