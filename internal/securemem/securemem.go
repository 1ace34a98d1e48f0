// Package securemem provides memory-locking and multi-pass clearing
// primitives for secrets, shares, and other sensitive byte buffers.
package securemem

import (
	"runtime"
	"sync"

	"github.com/mrz1836/gfshard/internal/csprng"
)

// Buffer wraps a sensitive byte slice with mlock (where the OS supports
// it) and guarantees multi-pass zeroing on Destroy. It is safe to call
// Destroy more than once.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// New allocates a Buffer of the given size and attempts to lock its
// backing memory. Locking failures are non-fatal: the buffer is still
// usable, just not protected from being swapped to disk.
func New(size int) *Buffer {
	data := make([]byte, size)
	b := &Buffer{
		data:   data,
		locked: lockMemory(data),
	}
	runtime.SetFinalizer(b, func(b *Buffer) { b.Destroy() })
	return b
}

// FromSlice copies data into a newly allocated, locked Buffer.
func FromSlice(data []byte) *Buffer {
	b := New(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying slice. It returns nil once Destroy has run.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Len returns the buffer length, or 0 if destroyed.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// IsLocked reports whether the backing memory is mlocked.
func (b *Buffer) IsLocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Destroy performs a multi-pass clear of the buffer, unlocks its memory,
// and releases the reference. Safe to call multiple times.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return
	}
	Clear(b.data)
	if b.locked {
		unlockMemory(b.data)
		b.locked = false
	}
	b.data = nil
	runtime.SetFinalizer(b, nil)
}

// Clear overwrites buf in place with three passes: cryptographically
// random bytes, then 0xFF, then 0x00. Ending on 0x00 keeps a subsequent
// accidental read innocuous, while the random and 0xFF passes defeat
// compilers or memory-remanence effects that might otherwise preserve a
// single predictable overwrite pattern. A read failure on the random pass
// is ignored; the 0xFF/0x00 passes still run unconditionally.
func Clear(buf []byte) {
	if len(buf) == 0 {
		return
	}
	if random, err := csprng.NextBytes(len(buf)); err == nil {
		copy(buf, random)
	}
	for i := range buf {
		buf[i] = 0xFF
	}
	for i := range buf {
		buf[i] = 0x00
	}
}

// ConstantTimeEqual reports whether a and b hold equal contents, in time
// that depends only on len(a) and len(b), never on where they first
// differ. Unequal lengths are rejected immediately since the length of a
// secret is rarely itself sensitive and len() is O(1) regardless.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// WithBuffer allocates a Buffer of size bytes, passes it to fn, and
// guarantees Destroy runs on every exit path including panics.
func WithBuffer(size int, fn func(*Buffer) error) error {
	b := New(size)
	defer b.Destroy()
	return fn(b)
}
