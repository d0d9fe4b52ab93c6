package agent

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRunner struct {
	id          string
	ran         atomic.Bool
	shouldPanic bool
}

func (r *fakeRunner) ID() string { return r.id }

func (r *fakeRunner) Run(_ context.Context) {
	r.ran.Store(true)
	if r.shouldPanic {
		panic("boom")
	}
}

func TestSupervisor_IsolatesPanickingAgent(t *testing.T) {
	bad := &fakeRunner{id: "bad", shouldPanic: true}
	good := &fakeRunner{id: "good"}

	done := make(chan struct{})
	go func() {
		NewSupervisor(bad, good).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not return")
	}

	assert.True(t, bad.ran.Load())
	assert.True(t, good.ran.Load(), "a sibling crash must not stop other agents")
}

func TestSupervisor_RunsAllAgents(t *testing.T) {
	runners := []*fakeRunner{{id: "a"}, {id: "b"}, {id: "c"}}

	sup := NewSupervisor(runners[0], runners[1], runners[2])
	sup.Run(context.Background())

	for _, r := range runners {
		assert.True(t, r.ran.Load())
	}
}
