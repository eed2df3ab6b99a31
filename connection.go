package contact

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Measurements is the geometric summary of a connection. Length applies
// to line contacts, Area to surface contacts; point contacts carry
// neither. Units follow the model's world space, metres for IFC.
type Measurements struct {
	Length float64
	Area   float64
}

// Connection is the durable record of one touching element pair.
type Connection struct {
	Key     PairKey
	Type    ConnType
	Measure Measurements
	// Points is the canonical point set in measuring order: span order
	// for line contacts, hull (angular) order for surface contacts.
	Points []r3.Vec
}

// ID returns the canonical connection identifier derived from the
// sorted element pair.
func (c *Connection) ID() string { return c.Key.String() }

// Stats summarizes one analysis pass.
type Stats struct {
	Elements      int
	Pairs         int // unordered pairs enumerated
	Candidates    int // pairs that passed the proximity filter
	SkippedMeshes int // malformed meshes ignored
	FailedPairs   int // pairs abandoned after an internal failure
	RawPoints     int // contact points before deduplication
	Junctions     int // locations where three or more elements meet
	DroppedPoints int // point connections removed by junction refinement
	Elapsed       time.Duration
}

// ConnectionSet is the full mapping from pair identity to Connection for
// one analysis pass. It is immutable once returned by Analyze; a new
// pass replaces it wholesale.
type ConnectionSet struct {
	// Pass uniquely identifies the analysis pass that produced this
	// set, so consumers can discard stale derived state.
	Pass  uuid.UUID
	Stats Stats

	conns    map[PairKey]*Connection
	byElem   map[ElementID][]PairKey
	elems    map[ElementID]*Element
	contacts *contactIndex
}

func newConnectionSet(elems []*Element) *ConnectionSet {
	s := &ConnectionSet{
		Pass:   uuid.New(),
		conns:  make(map[PairKey]*Connection),
		byElem: make(map[ElementID][]PairKey),
		elems:  make(map[ElementID]*Element, len(elems)),
	}
	for _, e := range elems {
		s.elems[e.ID] = e
	}
	return s
}

func (s *ConnectionSet) insert(c *Connection) {
	if _, dup := s.conns[c.Key]; !dup {
		s.byElem[c.Key.A] = append(s.byElem[c.Key.A], c.Key)
		s.byElem[c.Key.B] = append(s.byElem[c.Key.B], c.Key)
	}
	s.conns[c.Key] = c
}

func (s *ConnectionSet) remove(k PairKey) {
	if _, ok := s.conns[k]; !ok {
		return
	}
	delete(s.conns, k)
	s.byElem[k.A] = removeKey(s.byElem[k.A], k)
	s.byElem[k.B] = removeKey(s.byElem[k.B], k)
}

func removeKey(keys []PairKey, k PairKey) []PairKey {
	for i, key := range keys {
		if key == k {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}

// Len returns the number of connections in the set.
func (s *ConnectionSet) Len() int { return len(s.conns) }

// Get returns the connection for a pair key, if present.
func (s *ConnectionSet) Get(k PairKey) (*Connection, bool) {
	c, ok := s.conns[k]
	return c, ok
}

// All returns every connection sorted by pair key.
func (s *ConnectionSet) All() []*Connection {
	out := make([]*Connection, 0, len(s.conns))
	for _, c := range s.conns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out
}

// ForElement returns the connections touching the given element, sorted
// by pair key.
func (s *ConnectionSet) ForElement(id ElementID) []*Connection {
	keys := s.byElem[id]
	out := make([]*Connection, 0, len(keys))
	for _, k := range keys {
		if c, ok := s.conns[k]; ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out
}

// HasConnections reports whether the element touches anything.
func (s *ConnectionSet) HasConnections(id ElementID) bool {
	return len(s.byElem[id]) > 0
}

// Element returns the analyzed element with the given id, or nil.
func (s *ConnectionSet) Element(id ElementID) *Element {
	return s.elems[id]
}

// NearestContact returns the pair and exact location of the raw contact
// point closest to p, for picking in a viewer. ok is false when the pass
// produced no contact points at all.
func (s *ConnectionSet) NearestContact(p r3.Vec) (key PairKey, at r3.Vec, ok bool) {
	if s.contacts == nil {
		return PairKey{}, r3.Vec{}, false
	}
	rp, found := s.contacts.nearest(p)
	if !found {
		return PairKey{}, r3.Vec{}, false
	}
	return rp.pair, rp.p, true
}
