package agent

import (
	"context"
	"log"
	"sync"
)

// Runner is one independently running agent.
type Runner interface {
	ID() string
	Run(ctx context.Context)
}

// Supervisor starts each agent on its own goroutine and isolates failures:
// a panicking agent is logged and dropped while its siblings keep running.
type Supervisor struct {
	runners []Runner
}

func NewSupervisor(runners ...Runner) *Supervisor {
	return &Supervisor{runners: runners}
}

// Run blocks until every agent has returned.
func (s *Supervisor) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, r := range s.runners {
		wg.Add(1)
		go func(r Runner) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("[%s] Agent crashed: %v", r.ID(), rec)
				}
			}()
			r.Run(ctx)
		}(r)
	}

	wg.Wait()
}
