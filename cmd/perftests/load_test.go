package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"auction-market/internal/models"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name        string
	NumAuctions int
	ReadRatio   int // out of 10: list/detail reads
	MetaRatio   int // out of 10: metadata writes, the rest are bids
	Burst       bool
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration(nil), om.latencies...)
	om.mu.Unlock()
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// Benchmark_Load_Marketplace runs multiple scenarios
func Benchmark_Load_Marketplace(b *testing.B) {
	scenarios := []LoadScenario{
		{"ReadHeavy-SmallMarket", 10, 9, 0, false},
		{"ReadHeavy-LargeMarket", 500, 9, 0, false},
		{"Mixed-Workload", 100, 6, 2, false},
		{"Bid-Burst", 20, 2, 0, true},
		{"Metadata-Burst", 50, 3, 7, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	sc, svc := newBenchService(s.NumAuctions)
	ctx := context.Background()

	var totalOps, reads, bids, metaWrites, failures int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			addr := sc.addrs[rnd.Intn(len(sc.addrs))]
			opType := rnd.Intn(10)

			opStart := time.Now()
			var err error
			switch {
			case opType < s.ReadRatio:
				if rnd.Intn(2) == 0 {
					_, err = svc.ListAuctions(ctx)
				} else {
					_, err = svc.GetAuction(ctx, addr)
				}
				atomic.AddInt64(&reads, 1)
			case opType < s.ReadRatio+s.MetaRatio:
				_, err = svc.SetMetadata(ctx, addr, models.Metadata{Title: fmt.Sprintf("title_%d", rnd.Int())})
				atomic.AddInt64(&metaWrites, 1)
			default:
				_, err = svc.PlaceBid(ctx, addr, fmt.Sprintf("0.%06d", 1+rnd.Intn(999999)))
				atomic.AddInt64(&bids, 1)
			}
			if err != nil {
				// bids on auctions past their bidding window are expected to fail
				atomic.AddInt64(&failures, 1)
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})
	b.StopTimer()
	svc.Wait()

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Reads: %d | Bids: %d | Metadata: %d | Failed: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, reads, bids, metaWrites, failures, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
