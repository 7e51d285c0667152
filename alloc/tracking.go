package alloc

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Stats is a snapshot of a Tracking allocator's counters.
type Stats struct {
	Allocs   int64 // Allocate calls that succeeded
	Reallocs int64 // Reallocate calls that succeeded
	Releases int64 // Release calls
	Live     int64 // bytes currently held by live blocks
	Peak     int64 // high-water mark of Live
}

// String renders the counters with human-readable byte sizes.
func (s Stats) String() string {
	return fmt.Sprintf("allocs=%d reallocs=%d releases=%d live=%s peak=%s",
		s.Allocs, s.Reallocs, s.Releases,
		humanize.IBytes(uint64(max(s.Live, 0))), humanize.IBytes(uint64(max(s.Peak, 0))))
}

// Tracking wraps another Allocator and records per-call statistics. Every
// operation is also logged at debug level through the supplied logger, which
// makes a misbehaving caller's allocation pattern visible without touching
// the storage engine.
//
// A Tracking allocator is not thread-safe.
type Tracking struct {
	inner Allocator
	log   *zap.Logger
	stats Stats
}

// NewTracking wraps inner. A nil inner selects Default; a nil logger
// disables logging.
func NewTracking(inner Allocator, logger *zap.Logger) *Tracking {
	if inner == nil {
		inner = Default
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracking{inner: inner, log: logger}
}

// Allocate implements Allocator.
func (t *Tracking) Allocate(size int) ([]byte, error) {
	buf, err := t.inner.Allocate(size)
	if err != nil {
		t.log.Debug("allocate failed", zap.Int("size", size), zap.Error(err))
		return nil, err
	}
	t.stats.Allocs++
	t.grow(int64(len(buf)))
	t.log.Debug("allocate", zap.Int("size", size), zap.Int64("live", t.stats.Live))
	return buf, nil
}

// Reallocate implements Allocator.
func (t *Tracking) Reallocate(size int, buf []byte) ([]byte, error) {
	newBuf, err := t.inner.Reallocate(size, buf)
	if err != nil {
		t.log.Debug("reallocate failed",
			zap.Int("from", len(buf)), zap.Int("to", size), zap.Error(err))
		return nil, err
	}
	t.stats.Reallocs++
	t.grow(int64(size) - int64(len(buf)))
	t.log.Debug("reallocate",
		zap.Int("from", len(buf)), zap.Int("to", size), zap.Int64("live", t.stats.Live))
	return newBuf, nil
}

// Release implements Allocator.
func (t *Tracking) Release(buf []byte) {
	t.inner.Release(buf)
	t.stats.Releases++
	t.stats.Live -= int64(len(buf))
	t.log.Debug("release", zap.Int("size", len(buf)), zap.Int64("live", t.stats.Live))
}

func (t *Tracking) grow(delta int64) {
	t.stats.Live += delta
	if t.stats.Live > t.stats.Peak {
		t.stats.Peak = t.stats.Live
	}
}

// Stats returns a snapshot of the counters.
func (t *Tracking) Stats() Stats { return t.stats }

var _ Allocator = (*Tracking)(nil)
