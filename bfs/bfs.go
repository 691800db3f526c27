// Package bfs finds the nearest room with an unexplored exit by
// breadth-first search over the resolved cells of a frontier.Graph.
package bfs

import (
	"context"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/roamer/frontier"
	"github.com/katalvlaran/roamer/label"
)

// queueItem pairs a room with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// step is the parent link of a room in the BFS tree.
type step struct {
	parent int
	via    label.Label
}

// walker encapsulates mutable BFS state. It lives for one call only.
type walker struct {
	graph    *frontier.Graph
	opts     BFSOptions
	ctx      context.Context
	start    int
	queue    *arrayqueue.Queue
	visited  map[int]bool
	parent   map[int]step
	dequeued int
}

// FindNearestFrontier searches g from start through resolved cells only and
// returns the shortest path to the nearest room that still has an unknown exit.
// Neighbors are expanded in canonical label order, so ties break deterministically.
//
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrOptionViolation for invalid
// input, ErrNoFrontier if every reachable room is fully resolved, or the
// context error on cancellation.
func FindNearestFrontier(g *frontier.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		start:   start,
		queue:   arrayqueue.New(),
		visited: make(map[int]bool, n),
		parent:  make(map[int]step, n),
	}
	w.enqueue(start, 0)

	return w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id int, d int) {
	w.visited[id] = true
	w.opts.OnEnqueue(id, d)
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	v, _ := w.queue.Dequeue()
	item := v.(queueItem)
	w.dequeued++
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// loop processes the queue until a frontier room is dequeued, the queue
// drains, or the context is cancelled.
func (w *walker) loop() (*Result, error) {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if len(w.graph.UnknownLabels(item.id)) > 0 {
			return w.result(item), nil
		}
		w.enqueueNeighbors(item)
	}
	return nil, ErrNoFrontier
}

// enqueueNeighbors follows every resolved cell of item to an unseen room,
// honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.id) {
		if w.visited[e.To] {
			continue
		}
		w.parent[e.To] = step{parent: item.id, via: e.Label}
		w.enqueue(e.To, next)
	}
}

// result rebuilds the start → target path from parent links.
func (w *walker) result(target queueItem) *Result {
	path := make([]label.Label, target.depth)
	rooms := make([]int, target.depth+1)
	cur := target.id
	for i := target.depth; i > 0; i-- {
		st := w.parent[cur]
		path[i-1] = st.via
		rooms[i] = cur
		cur = st.parent
	}
	rooms[0] = w.start

	return &Result{
		Target:  target.id,
		Path:    path,
		Rooms:   rooms,
		Depth:   target.depth,
		Visited: w.dequeued,
	}
}
