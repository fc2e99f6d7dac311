// Package metrics exposes process counters and histograms in Prometheus
// text exposition format without pulling in a client library.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	optimizeRequestsTotal atomic.Uint64
	optimizeFailedTotal   atomic.Uint64
	rewriteRequestsTotal  atomic.Uint64
	rewriteFailedTotal    atomic.Uint64

	optimizeDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncOptimizeRequests increments the analysis request counter.
func IncOptimizeRequests() { optimizeRequestsTotal.Add(1) }

// IncOptimizeFailed increments the failed-analysis counter.
func IncOptimizeFailed() { optimizeFailedTotal.Add(1) }

// IncRewriteRequests increments the rewrite request counter.
func IncRewriteRequests() { rewriteRequestsTotal.Add(1) }

// IncRewriteFailed increments the failed-rewrite counter.
func IncRewriteFailed() { rewriteFailedTotal.Add(1) }

// ObserveOptimizeDurationMs records one analysis duration in milliseconds.
func ObserveOptimizeDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	optimizeDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders the metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "optimize_requests_total", "Total analysis requests", optimizeRequestsTotal.Load())
	writeCounter(&buf, "optimize_failed_total", "Total failed analysis requests", optimizeFailedTotal.Load())
	writeCounter(&buf, "rewrite_requests_total", "Total rewrite requests", rewriteRequestsTotal.Load())
	writeCounter(&buf, "rewrite_failed_total", "Total failed rewrite requests", rewriteFailedTotal.Load())
	writeHistogram(&buf, "optimize_duration_ms", "Analysis duration in milliseconds", optimizeDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts are per-bucket; Render accumulates them into the cumulative
	// form the exposition format requires.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
