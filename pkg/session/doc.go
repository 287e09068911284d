// Package session resolves authenticated, workspace-scoped sessions from
// opaque tokens sent as a bearer header or cookie.
//
// Sessions are looked up in a Store (Redis in production, memory in tests)
// and attached to the request context by the RequireWorkspace middleware;
// handlers read the workspace ID with WorkspaceIDFromContext. Requests
// without a valid session are rejected with 401 before any other store is
// touched.
package session
