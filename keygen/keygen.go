// Package keygen provides ready-made edge-key generation strategies
// satisfying the core.EdgeKeyFunc contract.
//
// A generator must return a key not already present in the target
// graph's edge table; the core does not retry on collision. Sequential
// keeps that guarantee per instance as long as callers do not also add
// explicit keys in its namespace; UUID keeps it probabilistically.
package keygen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/gravel/core"
)

// Sequential returns a generator producing prefix+"1", prefix+"2", ...
// The counter is monotonic for the generator instance and never reuses a
// value, so dropped edges do not free their keys.
func Sequential(prefix string) core.EdgeKeyFunc {
	var n uint64
	return func(bool, string, string, core.Attributes) string {
		return prefix + strconv.FormatUint(atomic.AddUint64(&n, 1), 10)
	}
}

// UUID returns a generator producing random version-4 UUID strings.
// Useful when edges from several graphs end up merged into one namespace
// and counter prefixes could collide.
func UUID() core.EdgeKeyFunc {
	return func(bool, string, string, core.Attributes) string {
		return uuid.NewString()
	}
}
