package contact

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/bimkit/contact/internal/d3"
)

// Options configure an analysis pass. All distances are in world units,
// metres for IFC models. Zero fields take the documented defaults.
type Options struct {
	// TouchTol is the ray hit distance below which two surfaces are
	// considered touching. Default 1 mm.
	TouchTol float64
	// DedupTol is the distance below which two contact points are the
	// same physical location. Also the junction bucket size. Default
	// 1 mm.
	DedupTol float64
	// ProximityTol is the bounding box separation above which a pair is
	// rejected without sampling. Independently meshed solids rarely have
	// bit-exact coincident boundaries, so this is looser than TouchTol.
	// Default 1 cm.
	ProximityTol float64
	// PlanarTol is the allowed deviation from the fitted plane for a
	// surface classification. Default 1 mm.
	PlanarTol float64
	// MinArea is the smallest patch still classified as a surface.
	// Default 1 mm².
	MinArea float64
	// SampleBudget caps surface samples per mesh. Default 64.
	SampleBudget int
	// Workers is the number of concurrent pair workers. Default
	// GOMAXPROCS.
	Workers int
	// RefineLines extends the junction refinement to line contacts.
	// By default only point contacts are reconsidered.
	RefineLines bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		TouchTol:     1e-3,
		DedupTol:     1e-3,
		ProximityTol: 1e-2,
		PlanarTol:    1e-3,
		MinArea:      1e-6,
		SampleBudget: defaultSampleBudget,
		Workers:      runtime.GOMAXPROCS(0),
	}
}

func (o *Options) fill() {
	def := DefaultOptions()
	if o.TouchTol <= 0 {
		o.TouchTol = def.TouchTol
	}
	if o.DedupTol <= 0 {
		o.DedupTol = def.DedupTol
	}
	if o.ProximityTol <= 0 {
		o.ProximityTol = def.ProximityTol
	}
	if o.PlanarTol <= 0 {
		o.PlanarTol = def.PlanarTol
	}
	if o.MinArea <= 0 {
		o.MinArea = def.MinArea
	}
	if o.SampleBudget <= 0 {
		o.SampleBudget = def.SampleBudget
	}
	if o.Workers <= 0 {
		o.Workers = def.Workers
	}
}

// ErrNoElements reports an analysis over an empty scene. It is a
// user-visible "nothing to analyze" condition, not a crash.
var ErrNoElements = errors.New("contact: no elements to analyze")

// Analyzer runs connection analysis passes over a scene's elements.
type Analyzer struct {
	opts Options
}

// NewAnalyzer returns an analyzer with the given options; zero option
// fields take defaults.
func NewAnalyzer(opts Options) *Analyzer {
	opts.fill()
	return &Analyzer{opts: opts}
}

// Options returns the effective options of the analyzer.
func (a *Analyzer) Options() Options { return a.opts }

// pairResult is the outcome of one pair's pipeline run.
type pairResult struct {
	key       PairKey
	conn      *Connection
	raw       []rawPoint
	candidate bool
	failed    bool
}

// Analyze enumerates all unordered element pairs, runs the contact
// pipeline over each and returns the resulting connection set. The pair
// loop fans out over Options.Workers goroutines; every pair reads only
// its own two elements plus a private point buffer, so the merge happens
// after the join and the returned set is fully committed, a cancelled
// pass never exposes partial results.
//
// Cost grows as pairs² × samples × triangle count. That is acceptable
// for scenes of hundreds of elements under the default sample budget;
// larger scenes need a coarser budget or pre-filtered element lists.
//
// Returns ErrNoElements for an empty scene and ctx.Err after
// cancellation. One pair failing internally does not abort the pass:
// the pair is recorded as having no connection and counted in
// Stats.FailedPairs.
func (a *Analyzer) Analyze(ctx context.Context, elems []*Element) (*ConnectionSet, error) {
	if len(elems) == 0 {
		return nil, ErrNoElements
	}
	start := time.Now()
	stats := Stats{
		Elements: len(elems),
		Pairs:    len(elems) * (len(elems) - 1) / 2,
	}
	for _, e := range elems {
		for mi := range e.Meshes {
			if !e.Meshes[mi].Valid() {
				stats.SkippedMeshes++
			}
		}
	}
	bounds := make([]d3.Box, len(elems))
	for i, e := range elems {
		bounds[i] = e.Bounds()
	}

	type pairJob struct{ i, j int }
	jobs := make(chan pairJob)
	results := make(chan pairResult)

	go func() {
		defer close(jobs)
		for i := 0; i < len(elems); i++ {
			for j := i + 1; j < len(elems); j++ {
				select {
				case jobs <- pairJob{i, j}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < a.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				res := a.analyzePair(elems[job.i], elems[job.j], bounds[job.i], bounds[job.j])
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var raw []rawPoint
	rawByPair := make(map[PairKey][]rawPoint)
	conns := make(map[PairKey]*Connection)
	for res := range results {
		if res.failed {
			stats.FailedPairs++
			continue
		}
		if res.candidate {
			stats.Candidates++
		}
		if len(res.raw) > 0 {
			raw = append(raw, res.raw...)
			rawByPair[res.key] = append(rawByPair[res.key], res.raw...)
		}
		if res.conn != nil {
			conns[res.key] = res.conn
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stats.RawPoints = len(raw)

	set := newConnectionSet(elems)
	for _, c := range conns {
		set.insert(c)
	}

	junctions := buildJunctionIndex(raw, a.opts.DedupTol)
	stats.Junctions = junctions.count()
	for key, c := range conns {
		if c.Type != TypePoint && !(a.opts.RefineLines && c.Type == TypeLine) {
			continue
		}
		if !anyJunction(junctions, rawByPair[key]) {
			set.remove(key)
			stats.DroppedPoints++
		}
	}
	set.contacts = newContactIndex(raw)
	stats.Elapsed = time.Since(start)
	set.Stats = stats
	return set, nil
}

func anyJunction(ix *junctionIndex, raw []rawPoint) bool {
	for _, rp := range raw {
		if ix.junctionAt(rp.p) {
			return true
		}
	}
	return false
}

// analyzePair runs the proximity filter, contact finder, deduplicator,
// classifier and measurement engine over one pair, short-circuiting to
// "no connection" as soon as a stage yields nothing. A panic while
// processing the pair is contained and reported as a failed pair so the
// rest of the batch continues.
func (a *Analyzer) analyzePair(ea, eb *Element, ba, bb d3.Box) (res pairResult) {
	res.key = MakePairKey(ea.ID, eb.ID)
	defer func() {
		if r := recover(); r != nil {
			res = pairResult{key: res.key, failed: true}
		}
	}()
	if ba.Dist(bb) > a.opts.ProximityTol {
		return res
	}
	res.candidate = true
	pts := findContacts(ea, eb, a.opts.TouchTol, a.opts.SampleBudget)
	if len(pts) == 0 {
		return res
	}
	res.raw = make([]rawPoint, len(pts))
	for i, p := range pts {
		res.raw[i] = rawPoint{p: p, pair: res.key}
	}
	canon := dedupe(pts, a.opts.DedupTol)
	conn := &Connection{
		Key:  res.key,
		Type: classify(canon, a.opts.PlanarTol, a.opts.MinArea),
	}
	switch conn.Type {
	case TypeLine:
		conn.Points = spanOrder(canon)
		conn.Measure.Length = Length(conn.Points)
	case TypeSurface:
		conn.Points = planarOrder(canon)
		conn.Measure.Area = Area(conn.Points)
	default:
		conn.Points = canon
	}
	res.conn = conn
	return res
}
