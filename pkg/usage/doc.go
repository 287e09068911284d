// Package usage counts workspace resources (leads, team members,
// campaigns, templates, email accounts) with pluggable counter functions.
//
// Counters are registered per resource and dispatched concurrently when a
// Snapshot is taken; the queries are independent reads with no ordering
// requirement beyond completing before the response is assembled. Lead
// counters are windowed at UTC day and month boundaries.
package usage
