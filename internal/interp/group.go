package interp

// Group is the scoped owner of one pipeline's child handles. Children
// are added as they're spawned; on successful synchronous completion
// Wait drains the queue, and on spawn failure KillAndWait drains it
// instead. If the group's scope ends with children still queued (a
// backgrounded pipeline), Close transfers them to the Reaper — a
// pipeline's children are never simply dropped.
type Group struct {
	children []Child
	reaper   *Reaper
}

// NewGroup creates a Group that hands any still-live children to reaper
// when Close is called.
func NewGroup(reaper *Reaper) *Group {
	return &Group{reaper: reaper}
}

// Add registers a newly spawned child with the group.
func (g *Group) Add(c Child) {
	g.children = append(g.children, c)
}

// KillAndWait sends a best-effort terminate to every member (failures
// ignored) and then waits for all of them, draining the queue.
func (g *Group) KillAndWait() {
	for _, c := range g.children {
		c.Kill()
	}
	g.waitAll()
}

// Wait waits for every member without killing, draining the queue.
// Waiting proceeds from the sink backward to the source: downstream
// consumers drain their input and exit, which is what lets upstream
// producers see EOF/SIGPIPE and exit in turn.
func (g *Group) Wait() {
	g.waitAll()
}

// waitAll waits sink-first (last added, first waited) and drains the
// queue.
func (g *Group) waitAll() {
	for i := len(g.children) - 1; i >= 0; i-- {
		g.children[i].Wait()
	}
	g.children = nil
}

// Close transfers any children still owned by the group to the reaper.
// It is a no-op if Wait or KillAndWait already drained the queue. Call
// it on every scope exit so a backgrounded pipeline's children are
// always handed off, never dropped.
func (g *Group) Close() {
	if len(g.children) == 0 {
		return
	}
	g.reaper.Adopt(g.children)
	g.children = nil
}
