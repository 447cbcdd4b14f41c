// Package cache implements the in-process caching subsystem of the
// OpenClaw core: three independent, concurrency-safe stores.
//
//   - TTLStore: an unbounded key–value map with per-entry expiry, a
//     mutable default TTL, lazy eviction on read, and an explicit sweep
//   - TimedCache: a capacity-bounded LRU map (map index + doubly-linked
//     list) with one uniform TTL fixed at construction
//   - GroupHistory: a per-group bounded FIFO log of timestamped records
//
// Each store owns exactly one lock; every operation is a single atomic
// transition, so operations on one instance are linearizable. Stores
// never share state: a shared cache means a deliberately shared
// instance reference, not a package-level singleton.
//
// Expired entries are logically absent everywhere on the read path but
// may physically linger until the access or sweep that removes them.
package cache
