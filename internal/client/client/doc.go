// Package client contains the client-side building blocks for talking to the
// StyloCoin backend and for bootstrapping local storage.
//
// # Overview
//
// The package provides:
//  1. Capability interfaces, one per backend resource (AuthAPI, UsersAPI,
//     WalletsAPI, DepositsAPI, IncomeAPI, MiningPackagesAPI,
//     SupportTicketsAPI, TransactionsAPI), aggregated by Client.
//  2. HTTPClient, a REST+JSON implementation that attaches a bearer token from
//     a TokenSource, tags every request with an X-Request-ID and normalizes
//     the backend's inconsistent list envelopes into models.Page.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying the embedded goose migrations.
//
// # Envelopes
//
// List endpoints answer with {"data": [...]}, {"content": [...]} or a bare
// array, and count with total, count, totalElements or totalCount. A data
// object wrapping any of those shapes is unwrapped first. Record endpoints
// may wrap the record in {"data": {...}}.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors for errors.Is: ErrUnavailable
// (network failure or 5xx), ErrUnauthorized (401/403), ErrNotFound (404),
// ErrTimeout (deadline exceeded) and ErrBadEnvelope. Other non-2xx answers
// are returned as *HTTPError carrying the backend message.
//
// HTTPClient is safe for concurrent use. All operations honor context
// cancellation and deadlines.
package client
