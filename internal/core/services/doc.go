// Package services implements the change-feed-to-document pipeline.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Walker drives pagination and dispatch; the Materializer turns a
// single blob into document records. Both are synchronous: one page and
// one blob at a time, no internal retries.
package services
