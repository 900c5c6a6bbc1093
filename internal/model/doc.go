package model

// Package model defines the ephemeral domain structures passed between
// the CLI and the download orchestrator: the per-invocation request and
// result, progress snapshots, and the task status enum. Nothing here is
// persisted; every value lives for a single process invocation.
