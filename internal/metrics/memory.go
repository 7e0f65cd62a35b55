// Package metrics provides runtime memory introspection for the demo runners
// and the HTTP health endpoint.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	TotalAlloc   uint64 // cumulative bytes allocated
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryDelta describes how memory usage changed between two snapshots.
// Cumulative counters (TotalAlloc, NumGC) subtract cleanly; gauge values
// (HeapAlloc) may shrink across a GC cycle, so the delta is signed.
type MemoryDelta struct {
	HeapAllocDelta int64  // change in live heap bytes
	TotalAlloc     uint64 // bytes allocated during the interval
	NumGC          uint32 // GC cycles completed during the interval
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		TotalAlloc:   m.TotalAlloc,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// DeltaSince computes the change in memory usage from an earlier snapshot to
// the current moment.
func (mc *MemoryCollector) DeltaSince(before MemorySnapshot) MemoryDelta {
	after := mc.Snapshot()
	return MemoryDelta{
		HeapAllocDelta: int64(after.HeapAlloc) - int64(before.HeapAlloc),
		TotalAlloc:     after.TotalAlloc - before.TotalAlloc,
		NumGC:          after.NumGC - before.NumGC,
	}
}
