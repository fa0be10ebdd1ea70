package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xv6sh/shell/internal/interp"
)

// fakeChild is a Child double that records Kill/Wait calls instead of
// driving a real *exec.Cmd, so group/reaper ordering can be tested
// without spawning processes.
type fakeChild struct {
	name    string
	exited  bool
	killed  bool
	waited  bool
	waitLog *[]string
}

func (c *fakeChild) Kill() error {
	c.killed = true
	return nil
}

func (c *fakeChild) TryWait() bool {
	return c.exited
}

func (c *fakeChild) Wait() error {
	c.waited = true
	c.exited = true
	if c.waitLog != nil {
		*c.waitLog = append(*c.waitLog, c.name)
	}
	return nil
}

func TestGroup_WaitDrainsSinkFirst(t *testing.T) {
	var order []string
	source := &fakeChild{name: "source", waitLog: &order}
	filter := &fakeChild{name: "filter", waitLog: &order}
	sink := &fakeChild{name: "sink", waitLog: &order}

	reaper := interp.NewReaper()
	g := interp.NewGroup(reaper)
	g.Add(source)
	g.Add(filter)
	g.Add(sink)

	g.Wait()

	assert.Equal(t, []string{"sink", "filter", "source"}, order)
	assert.Equal(t, 0, reaper.Len())
}

func TestGroup_KillAndWaitKillsEveryMember(t *testing.T) {
	a := &fakeChild{name: "a"}
	b := &fakeChild{name: "b"}

	g := interp.NewGroup(interp.NewReaper())
	g.Add(a)
	g.Add(b)

	g.KillAndWait()

	assert.True(t, a.killed)
	assert.True(t, b.killed)
	assert.True(t, a.waited)
	assert.True(t, b.waited)
}

func TestGroup_CloseAdoptsLeftoverChildrenIntoReaper(t *testing.T) {
	reaper := interp.NewReaper()
	g := interp.NewGroup(reaper)
	g.Add(&fakeChild{name: "bg"})

	g.Close()

	assert.Equal(t, 1, reaper.Len())
}

func TestGroup_CloseIsNoOpAfterWait(t *testing.T) {
	reaper := interp.NewReaper()
	g := interp.NewGroup(reaper)
	g.Add(&fakeChild{name: "a"})

	g.Wait()
	g.Close()

	assert.Equal(t, 0, reaper.Len())
}
