package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// GetStateHash returns an MD5 hash of the living cell set. Cells are fed to
// the hash in row-major order, so two equal sets always hash the same
// regardless of how they were built.
func (g Generation) GetStateHash() string {
	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, cell := range g.Cells() {
		binary.BigEndian.PutUint64(buf[:8], uint64(cell.Row))
		binary.BigEndian.PutUint64(buf[8:], uint64(cell.Col))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Keep only the last 5 states to detect cycles
const historyDepth = 5

// History remembers hashes of recently observed generations so the driver
// can notice static boards and short oscillations.
type History struct {
	hashes []string
}

// IsStagnant reports whether g repeats one of the last three observed states,
// which catches static boards and cycles up to period 3. Call it before
// Observe so the frame is compared against prior frames only.
func (h *History) IsStagnant(g Generation) bool {
	if len(h.hashes) == 0 {
		return false
	}

	var (
		hash  = g.GetStateHash()
		first = max(0, len(h.hashes)-3)
	)
	for _, seen := range h.hashes[first:] {
		if seen == hash {
			return true
		}
	}

	return false
}

// Observe records g's hash and trims the history to the most recent states
func (h *History) Observe(g Generation) {
	h.hashes = append(h.hashes, g.GetStateHash())

	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
}

// Reset drops all recorded states
func (h *History) Reset() {
	h.hashes = nil
}
