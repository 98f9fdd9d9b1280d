// Package uncert assigns process-wide identities to independent
// uncertainty sources. Two measurement terms carrying the same Source
// are correlated: linear error propagation combines their gradients
// instead of their magnitudes, so self-referential expressions cancel
// exactly rather than merely numerically.
package uncert

import "sync/atomic"

// Source identifies one independent uncertainty contribution.
// Sources are minted once, live for the process duration, and are
// never reused. The zero Source means "no source" (an exact value).
type Source uint64

// None is the reserved id for values with no uncertainty source.
const None Source = 0

var counter atomic.Uint64

// Next mints a fresh Source. Safe for concurrent use; two callers
// never receive the same id.
func Next() Source {
	return Source(counter.Add(1))
}
