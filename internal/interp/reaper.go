package interp

// Reaper is the process-wide holder of background child handles. It is
// created once by the driver and passed by reference into the
// interpreter; it is the only piece of mutable global-ish state the core
// needs, modelled explicitly instead of reached for as an ambient
// global.
type Reaper struct {
	children []Child
}

// NewReaper creates an empty Reaper.
func NewReaper() *Reaper {
	return &Reaper{}
}

// Adopt transfers ownership of a pipeline's still-live children to the
// reaper, e.g. when a Group's scope exits with a backgrounded pipeline
// still running.
func (r *Reaper) Adopt(children []Child) {
	r.children = append(r.children, children...)
}

// Reap non-blockingly checks each held child: terminated children
// (successfully or in error) are dropped, still-running children are
// retained. Called once per input line, before processing the new
// line, so zombies from prior background pipelines are collected
// promptly. Calling Reap twice in a row with no intervening spawn is
// equivalent to calling it once.
func (r *Reaper) Reap() {
	live := r.children[:0]
	for _, c := range r.children {
		if !c.TryWait() {
			live = append(live, c)
		}
	}
	r.children = live
}

// Len reports how many background children the reaper currently holds.
// Exercised by tests; the interpreter itself never needs this count.
func (r *Reaper) Len() int {
	return len(r.children)
}
