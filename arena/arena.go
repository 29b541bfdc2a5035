// Package arena provides a word arena: a bump allocator that hands out runs of
// uint64 words, with an exact-size free list for instant reuse of freed runs.
//
// # Ownership
//
// An Arena belongs to a single goroutine. It does no locking; runs it hands out
// must be used and freed on the goroutine that owns the arena. Use one arena per
// worker and pass it explicitly to whatever creates bit vectors.
//
// # Memory Management
//
// Words are carved from chunks of DefaultChunkSize words (see WithChunkSize). A
// request that does not fit in the rest of the current chunk starts a new chunk.
// A request larger than the chunk size gets a dedicated chunk of exactly its
// size, and bumping carries on in the current chunk. Chunks are never moved or
// resized.
//
// A freed run is zeroed up to the number of words the owner reports as used and
// parked on the free list under its exact length. Runs are never split or
// merged: a run freed with length n only satisfies later requests for n words.
//
// # Generations
//
// Reset starts a new generation. Runs handed out before it are no longer owned
// by their holders: their words may already back newer runs. Holders record
// Generation when they lease a run and drop, rather than Free, a run whose
// generation is stale.
package arena

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"
)

// ErrExhausted is returned when the arena cannot start a new chunk.
var ErrExhausted = errors.New("arena: exhausted")

const (
	// DefaultChunkSize is the default size of a chunk in words (32 KiB).
	DefaultChunkSize = 4096
)

// Stats tracks arena usage.
type Stats struct {
	Chunks        int // chunks currently held
	WordsReserved int // words held across all chunks
	WordsBumped   int // words handed out by the bump cursor
	Allocs        int // runs handed out, bumped or reused
	Reuses        int // runs served from the free list
	Frees         int // runs returned
	FreeRuns      int // runs currently parked on the free list
}

// Arena is a single-owner word allocator.
type Arena struct {
	chunkSize int
	maxChunks int

	chunks [][]uint64
	// current is the tail of the newest chunk that has not been handed out yet.
	current []uint64

	free  map[int][][]uint64
	stats Stats
	// generation is bumped by Reset
	generation uint64

	logger *slog.Logger
}

// Option is a configuration option for Arena.
type Option func(*Arena)

// WithChunkSize sets the number of words in a regular chunk.
// Non-positive values select DefaultChunkSize.
func WithChunkSize(words int) Option {
	return func(a *Arena) {
		if words > 0 {
			a.chunkSize = words
		}
	}
}

// WithMaxChunks caps the number of chunks the arena may hold. Zero means no cap.
func WithMaxChunks(n int) Option {
	return func(a *Arena) {
		if n >= 0 {
			a.maxChunks = n
		}
	}
}

// WithLogger sets the logger used for chunk lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Arena) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an empty arena. No chunk is reserved until the first allocation.
func New(opts ...Option) *Arena {
	a := &Arena{
		chunkSize: DefaultChunkSize,
		free:      make(map[int][][]uint64),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generation returns the current generation. It changes on every Reset.
func (a *Arena) Generation() uint64 {
	return a.generation
}

// ChunkSize returns the number of words in a regular chunk.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Alloc returns a zero-filled run of exactly n words. For n == 0 it returns nil,
// which must never be indexed.
//
// Alloc panics with an error wrapping ErrExhausted if a new chunk is needed and
// the chunk limit has been reached.
func (a *Arena) Alloc(n int) []uint64 {
	run, err := a.TryAlloc(n)
	if err != nil {
		panic(err)
	}
	return run
}

// TryAlloc is like Alloc but reports exhaustion as an error.
func (a *Arena) TryAlloc(n int) ([]uint64, error) {
	if n < 0 {
		panic(fmt.Sprintf("arena: negative run length %v", n))
	}
	if n == 0 {
		return nil, nil
	}

	if bucket := a.free[n]; len(bucket) > 0 {
		last := len(bucket) - 1
		run := bucket[last]
		bucket[last] = nil
		a.free[n] = bucket[:last]
		a.stats.FreeRuns--
		a.stats.Reuses++
		a.stats.Allocs++
		return run, nil
	}

	if len(a.current) < n {
		chunk, err := a.newChunk(n)
		if err != nil {
			return nil, err
		}
		if n > a.chunkSize {
			a.stats.WordsBumped += n
			a.stats.Allocs++
			return chunk[:n:n], nil
		}
		a.current = chunk
	}

	// full slice expression: appending to a run must never spill into its neighbour
	run := a.current[:n:n]
	a.current = a.current[n:]
	a.stats.WordsBumped += n
	a.stats.Allocs++
	return run, nil
}

// newChunk reserves a chunk big enough for a run of n words.
func (a *Arena) newChunk(n int) ([]uint64, error) {
	if a.maxChunks > 0 && len(a.chunks) >= a.maxChunks {
		return nil, fmt.Errorf("%w: %d chunks in use, requested run of %d words", ErrExhausted, len(a.chunks), n)
	}

	size := max(a.chunkSize, n)
	chunk := make([]uint64, size)
	a.chunks = append(a.chunks, chunk)

	a.stats.Chunks++
	a.stats.WordsReserved += size

	a.logger.Debug("arena chunk allocated",
		"chunk", len(a.chunks)-1,
		"words", size,
		"request", n,
	)
	return chunk, nil
}

// Free returns run to the arena. used is the number of leading words that may
// hold nonzero data; the rest of the run must already be zero. Only run[:used]
// is cleared before the run is parked under bucket len(run).
//
// Freeing a nil or empty run is a no-op. The caller must not touch run afterwards.
// Free panics if run does not lie inside a chunk of this arena. It cannot tell a
// live run from one handed out before the last Reset; see Generation.
func (a *Arena) Free(run []uint64, used int) {
	n := len(run)
	if used < 0 || used > n {
		panic(fmt.Sprintf("arena: used words %v out of range for run of %v words", used, n))
	}
	if n == 0 {
		return
	}
	if !a.owns(run) {
		panic(fmt.Sprintf("arena: run of %v words was not allocated by this arena", n))
	}
	clear(run[:used])
	a.free[n] = append(a.free[n], run[:n:n])
	a.stats.FreeRuns++
	a.stats.Frees++
}

// Reset drops every outstanding run and the free list, keeping the first chunk
// for reuse, and starts a new generation. All runs handed out before Reset
// become invalid and must not be freed.
func (a *Arena) Reset() {
	a.generation++
	clear(a.free)
	a.stats.FreeRuns = 0

	if len(a.chunks) == 0 {
		return
	}

	first := a.chunks[0]
	clear(first)
	for i := 1; i < len(a.chunks); i++ {
		a.chunks[i] = nil
	}
	a.chunks = a.chunks[:1]
	a.current = first

	a.stats.Chunks = 1
	a.stats.WordsReserved = len(first)
	a.stats.WordsBumped = 0

	a.logger.Debug("arena reset", "words", len(first))
}

// owns reports whether run lies entirely inside one of the live chunks.
// Newest chunks are checked first since recent runs are freed most often.
func (a *Arena) owns(run []uint64) bool {
	start := uintptr(unsafe.Pointer(&run[0])) //nolint:gosec // address comparison only
	end := start + uintptr(len(run))*8
	for i := len(a.chunks) - 1; i >= 0; i-- {
		chunk := a.chunks[i]
		base := uintptr(unsafe.Pointer(&chunk[0])) //nolint:gosec // address comparison only
		if start >= base && end <= base+uintptr(len(chunk))*8 {
			return true
		}
	}
	return false
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() Stats {
	return a.stats
}

func (a *Arena) String() string {
	s := a.stats
	return fmt.Sprintf(
		"Arena{chunks: %d, reserved: %d words, bumped: %d words, allocs: %d, reuses: %d, frees: %d, parked: %d}",
		s.Chunks,
		s.WordsReserved,
		s.WordsBumped,
		s.Allocs,
		s.Reuses,
		s.Frees,
		s.FreeRuns,
	)
}
