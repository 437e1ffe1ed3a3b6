package worker

import "sync"

// Task is a unit of background work, e.g. a cache invalidation after a
// mutating request.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers and a queue of the same size.
// n <= 0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
	once sync.Once
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop closes the queue and waits for in-flight tasks. Safe to call twice.
func (p *pool) Stop() {
	p.once.Do(func() { close(p.jobs) })
	p.wg.Wait()
}
