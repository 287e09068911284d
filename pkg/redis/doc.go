// Package redis provides Redis connectivity with retry on startup and a
// health probe. The session store uses it for token lookups.
package redis
