package flexbox

import "math"

// Unconstrained is the sentinel used everywhere an "available" length is
// unbounded (e.g. measuring a node's max-content size). Spec §4.2/§9
// warns against using raw NaN as this sentinel, since NaN != NaN breaks
// reflexive cache-key equality and risks false misses/hits. math.Inf(1)
// is a dedicated, IEEE-754-comparable constant (Inf == Inf is always
// true) that serves the same "no constraint" purpose without that trap.
// Producers must canonicalize to exactly this value — never construct an
// ad hoc large number — so two unconstrained queries always compare equal.
var Unconstrained = math.Inf(1)

func isUnconstrained(v float64) bool {
	return math.IsInf(v, 1)
}

// layoutCacheSize is the minimum bounded size spec §4.2 recommends.
const layoutCacheSize = 8

// layoutCacheKey is the fingerprint spec §4.2 keys a cached layout
// result on.
type layoutCacheKey struct {
	availW, availH         float64
	widthMode, heightMode  MeasureMode
	parentDir              Direction
	styleGen, childrenGen  uint64
}

type layoutCacheEntry struct {
	key   layoutCacheKey
	w, h  float64
	dir   Direction
	valid bool
	// seq records when the entry was last inserted or hit, so eviction
	// replaces the least recently used entry; an entry touched during the
	// pass in flight always outranks one last touched in an earlier pass.
	seq uint64
}

// layoutCache is a small bounded fingerprint cache living on each Node.
type layoutCache struct {
	entries [layoutCacheSize]layoutCacheEntry
	filled  int
	seq     uint64 // monotonic counter, bumped on every insert and every hit
}

func (c *layoutCache) lookup(key layoutCacheKey) (w, h float64, dir Direction, ok bool) {
	for i := 0; i < c.filled; i++ {
		e := &c.entries[i]
		if e.valid && e.key == key {
			c.seq++
			e.seq = c.seq
			return e.w, e.h, e.dir, true
		}
	}
	return 0, 0, 0, false
}

// insert adds a fingerprint entry. Eviction is LRU: once full, the slot
// with the lowest seq (least recently inserted or hit) is replaced.
func (c *layoutCache) insert(key layoutCacheKey, w, h float64, dir Direction) {
	c.seq++
	entry := layoutCacheEntry{key: key, w: w, h: h, dir: dir, valid: true, seq: c.seq}

	if c.filled < layoutCacheSize {
		c.entries[c.filled] = entry
		c.filled++
		return
	}

	oldest := 0
	for i := 1; i < layoutCacheSize; i++ {
		if c.entries[i].seq < c.entries[oldest].seq {
			oldest = i
		}
	}
	c.entries[oldest] = entry
}

func (c *layoutCache) clear() {
	*c = layoutCache{}
}
