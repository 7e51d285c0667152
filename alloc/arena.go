package alloc

import (
	"github.com/joshuapare/dynlist/internal/mem"
)

const (
	// defaultChunkSize is the slab size an Arena carves blocks from when the
	// config leaves it zero.
	defaultChunkSize = 64 << 10

	// largeDivisor: requests of chunkSize/largeDivisor bytes or more bypass
	// the current slab and get their own block, so one big list cannot burn
	// most of a slab.
	largeDivisor = 4
)

// ArenaConfig tunes an Arena.
type ArenaConfig struct {
	// ChunkSize is the size in bytes of each slab the arena bumps through.
	// Zero selects the default (64 KiB).
	ChunkSize int
}

// Arena is a chunked bump allocator. Blocks are carved sequentially out of
// fixed-size slabs; Release is a no-op and the space of released or outgrown
// blocks is reclaimed only by Reset. That trade is a good fit for building
// many short-lived lists and throwing them away together.
//
// An Arena is not thread-safe.
type Arena struct {
	cfg ArenaConfig

	chunk  []byte // current slab; nil until the first small allocation
	off    int    // bump offset into chunk, always BlockAlign-aligned
	chunks int    // slabs created since the last Reset

	allocated int64 // bytes handed out since the last Reset, large blocks included
}

// NewArena creates an arena with the given configuration.
func NewArena(cfg ArenaConfig) *Arena {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	cfg.ChunkSize = mem.AlignUp(cfg.ChunkSize, mem.BlockAlign)
	return &Arena{cfg: cfg}
}

// Allocate implements Allocator. Small requests bump through the current
// slab; requests of ChunkSize/4 bytes or more get a dedicated block.
func (a *Arena) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrSize
	}
	a.allocated += int64(size)
	if size >= a.cfg.ChunkSize/largeDivisor {
		return alignedMake(size), nil
	}
	if a.chunk == nil || a.off+size > len(a.chunk) {
		a.chunk = alignedMake(a.cfg.ChunkSize)
		a.off = 0
		a.chunks++
	}
	buf := a.chunk[a.off : a.off+size : a.off+size]
	a.off = mem.AlignUp(a.off+size, mem.BlockAlign)
	return buf, nil
}

// Reallocate implements Allocator. Bump allocation cannot resize in place:
// a new block is carved and the common prefix copied. The old block becomes
// dead space until Reset.
func (a *Arena) Reallocate(size int, buf []byte) ([]byte, error) {
	if size < 0 {
		return nil, ErrSize
	}
	if size == len(buf) {
		return buf, nil
	}
	newBuf, err := a.Allocate(size)
	if err != nil {
		return nil, err
	}
	copy(newBuf, buf)
	return newBuf, nil
}

// Release implements Allocator as a no-op; arena space comes back via Reset.
func (*Arena) Release([]byte) {}

// Reset drops every slab and counter. All blocks the arena ever handed out
// are invalid afterwards, including blocks obtained through Reallocate.
func (a *Arena) Reset() {
	a.chunk, a.off = nil, 0
	a.chunks = 0
	a.allocated = 0
}

// Allocated reports the bytes handed out since the last Reset.
func (a *Arena) Allocated() int64 { return a.allocated }

// Chunks reports the slabs created since the last Reset.
func (a *Arena) Chunks() int { return a.chunks }

var _ Allocator = (*Arena)(nil)
