package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps AtomicString values in bytes; truncation never splits a rune
const MaxStringLen = 32

// AtomicFloat is a float64 gauge stored as IEEE-754 bits
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get returns the stored value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Max raises the stored value to val if val is larger and returns the result
// NaN is ignored
func (f *AtomicFloat) Max(val float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		if math.IsNaN(val) || val <= cur {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}

// AtomicString holds a short label such as a phase name
// Zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, cut at the last rune boundary within MaxStringLen
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the label
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
