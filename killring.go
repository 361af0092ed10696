package lineedit

// DefaultKillRingSize is the default bounded ring capacity (§3).
const DefaultKillRingSize = 60

// KillRing is a bounded ring of killed strings plus the two flags the
// dispatcher manages around widget identity (§3). Slot layout and the
// forward/backward append behavior are grounded on
// other_examples/robottwo-bishop__killring.go; the LastYank/LastKill flags
// and the yank-pop rotation are spec.md's, since the reference file only
// tracks a single lastWasKill bool and has no yank-pop state of its own.
type KillRing struct {
	ring     []string // ring[0] is most recent
	yankIdx  int      // position consulted by YankPop, relative to ring[0]
	max      int
	LastYank bool // previous widget was yank/yank-pop
	LastKill bool // previous widget was a kill-family command
}

// NewKillRing creates a ring with the given capacity (0 uses the default).
func NewKillRing(capacity int) *KillRing {
	if capacity <= 0 {
		capacity = DefaultKillRingSize
	}
	return &KillRing{max: capacity}
}

// Add pushes s as a new slot, or — if the previous widget was also a kill —
// appends it to the most recent slot's tail (§3).
func (k *KillRing) Add(s string) {
	if s == "" {
		return
	}
	if k.LastKill && len(k.ring) > 0 {
		k.ring[0] += s
		return
	}
	k.push(s)
}

// AddBackwards behaves like Add but prepends to the tail slot instead of
// appending, for backward kill commands (§3).
func (k *KillRing) AddBackwards(s string) {
	if s == "" {
		return
	}
	if k.LastKill && len(k.ring) > 0 {
		k.ring[0] = s + k.ring[0]
		return
	}
	k.push(s)
}

func (k *KillRing) push(s string) {
	k.ring = append([]string{s}, k.ring...)
	if len(k.ring) > k.max {
		k.ring = k.ring[:k.max]
	}
	k.yankIdx = 0
}

// Yank returns the most recently killed string, or "" if the ring is
// empty.
func (k *KillRing) Yank() string {
	if len(k.ring) == 0 {
		return ""
	}
	k.yankIdx = 0
	return k.ring[0]
}

// YankPop rotates to the next-older entry and returns it, wrapping around.
// Returns "" if the ring is empty.
func (k *KillRing) YankPop() string {
	if len(k.ring) == 0 {
		return ""
	}
	k.yankIdx = (k.yankIdx + 1) % len(k.ring)
	return k.ring[k.yankIdx]
}

// Len reports the number of slots currently held.
func (k *KillRing) Len() int { return len(k.ring) }
