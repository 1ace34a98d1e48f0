// Package metrics provides application-level metrics collection.
// This is a lightweight metrics foundation using atomic counters.
// For production observability, consider integrating with Prometheus or similar.
package metrics

import (
	"sync/atomic"
)

// Metrics holds application metrics using atomic counters for thread safety.
type Metrics struct {
	// RS encode/decode metrics
	rsEncodeTotal  atomic.Int64
	rsEncodeErrors atomic.Int64
	rsDecodeTotal  atomic.Int64
	rsDecodeErrors atomic.Int64

	// SSS split/reconstruct metrics
	sssSplitTotal        atomic.Int64
	sssSplitErrors       atomic.Int64
	sssReconstructTotal  atomic.Int64
	sssReconstructErrors atomic.Int64

	// Matrix inversion cache metrics
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
}

// Global is the global metrics instance.
// Use this for recording metrics throughout the application.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// RecordRSEncode records an RS encode call.
func (m *Metrics) RecordRSEncode(err error) {
	m.rsEncodeTotal.Add(1)
	if err != nil {
		m.rsEncodeErrors.Add(1)
	}
}

// RecordRSDecode records an RS decode call.
func (m *Metrics) RecordRSDecode(err error) {
	m.rsDecodeTotal.Add(1)
	if err != nil {
		m.rsDecodeErrors.Add(1)
	}
}

// RecordSSSSplit records an SSS split call.
func (m *Metrics) RecordSSSSplit(err error) {
	m.sssSplitTotal.Add(1)
	if err != nil {
		m.sssSplitErrors.Add(1)
	}
}

// RecordSSSReconstruct records an SSS reconstruct call.
func (m *Metrics) RecordSSSReconstruct(err error) {
	m.sssReconstructTotal.Add(1)
	if err != nil {
		m.sssReconstructErrors.Add(1)
	}
}

// RecordCacheHit records a matrix-inversion-cache hit.
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Add(1)
}

// RecordCacheMiss records a matrix-inversion-cache miss.
func (m *Metrics) RecordCacheMiss() {
	m.cacheMisses.Add(1)
}

// AddCacheHits adds n matrix-inversion-cache hits, for callers that
// observe hit counts in bulk (such as the CLI reading cache stats deltas).
func (m *Metrics) AddCacheHits(n int64) {
	m.cacheHits.Add(n)
}

// AddCacheMisses adds n matrix-inversion-cache misses.
func (m *Metrics) AddCacheMisses(n int64) {
	m.cacheMisses.Add(n)
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	RSEncodeTotal        int64
	RSEncodeErrors       int64
	RSDecodeTotal        int64
	RSDecodeErrors       int64
	SSSSplitTotal        int64
	SSSSplitErrors       int64
	SSSReconstructTotal  int64
	SSSReconstructErrors int64
	CacheHits            int64
	CacheMisses          int64
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		RSEncodeTotal:        m.rsEncodeTotal.Load(),
		RSEncodeErrors:       m.rsEncodeErrors.Load(),
		RSDecodeTotal:        m.rsDecodeTotal.Load(),
		RSDecodeErrors:       m.rsDecodeErrors.Load(),
		SSSSplitTotal:        m.sssSplitTotal.Load(),
		SSSSplitErrors:       m.sssSplitErrors.Load(),
		SSSReconstructTotal:  m.sssReconstructTotal.Load(),
		SSSReconstructErrors: m.sssReconstructErrors.Load(),
		CacheHits:            m.cacheHits.Load(),
		CacheMisses:          m.cacheMisses.Load(),
	}
}

// CacheHitRate returns the matrix-inversion-cache hit rate as a
// percentage (0-100). Returns 0 if no cache lookups have occurred.
func (m *Metrics) CacheHitRate() float64 {
	hits := m.cacheHits.Load()
	misses := m.cacheMisses.Load()
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

// Reset resets all metrics to zero.
// Useful for testing.
func (m *Metrics) Reset() {
	m.rsEncodeTotal.Store(0)
	m.rsEncodeErrors.Store(0)
	m.rsDecodeTotal.Store(0)
	m.rsDecodeErrors.Store(0)
	m.sssSplitTotal.Store(0)
	m.sssSplitErrors.Store(0)
	m.sssReconstructTotal.Store(0)
	m.sssReconstructErrors.Store(0)
	m.cacheHits.Store(0)
	m.cacheMisses.Store(0)
}
