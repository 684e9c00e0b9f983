// Package pool implements an elastic, bounded-parallelism job pool: a
// work queue that grows its worker count on demand up to a ceiling and
// offers a clean drain-and-shutdown barrier.
//
// The design mirrors a two-lock discipline directly, in which one lock
// guards the worker list and the other guards the job queue plus the
// busy counter and shutdown flag, and the two locks are never held at
// once. That avoids the deadlock that a single combined lock invites:
// a worker touching the queue while Submit tries to grow the worker
// list.
package pool

import (
	"sync"
)

// Job is a unit of work submitted to the pool. It is executed exactly
// once by one worker and dropped afterward.
type Job func()

// Pool is a bounded-parallelism worker set with a shutdown barrier.
type Pool struct {
	tMax int // 0 means unbounded

	queueMu   sync.Mutex
	cond      *sync.Cond
	queue     []Job
	busy      int
	isShutdown bool

	listMu      sync.Mutex
	workerCount int
	wg          sync.WaitGroup

	shutdownOnce sync.Once
}

// New constructs a Pool with tMin initial workers and a ceiling of
// tMax. tMax of 0 means unbounded.
func New(tMin, tMax int) *Pool {
	p := &Pool{tMax: tMax}
	p.cond = sync.NewCond(&p.queueMu)

	p.listMu.Lock()
	p.startWorkersLocked(tMin)
	p.listMu.Unlock()

	return p
}

// Size reports the current worker count.
func (p *Pool) Size() int {
	p.listMu.Lock()
	defer p.listMu.Unlock()
	return p.workerCount
}

// Busy reports the number of workers currently executing a job.
func (p *Pool) Busy() int {
	p.queueMu.Lock()
	defer p.queueMu.Unlock()
	return p.busy
}

// Submit enqueues job for execution and returns true, or returns false
// without enqueuing anything if the pool has begun shutting down.
//
// After pushing the job, Submit takes a snapshot of the busy count and
// releases the queue lock before touching the worker list, so the two
// locks are never held together: this is the snapshot-then-release
// pattern the two-lock discipline depends on.
func (p *Pool) Submit(job Job) bool {
	p.queueMu.Lock()
	if p.isShutdown {
		p.queueMu.Unlock()
		return false
	}
	p.queue = append(p.queue, job)
	p.cond.Signal()
	busySnapshot := p.busy
	p.queueMu.Unlock()

	p.listMu.Lock()
	if p.workerCount == busySnapshot {
		p.startWorkersLocked(1)
	}
	p.listMu.Unlock()

	return true
}

// startWorkersLocked starts up to n new workers, capped so the total
// worker count never exceeds tMax (when tMax is nonzero). Callers must
// hold listMu.
func (p *Pool) startWorkersLocked(n int) {
	if p.tMax != 0 {
		if p.workerCount >= p.tMax {
			return
		}
		if p.workerCount+n > p.tMax {
			n = p.tMax - p.workerCount
		}
	}

	for i := 0; i < n; i++ {
		p.workerCount++
		p.wg.Add(1)
		go p.routine()
	}
}

// routine is the body run by every worker goroutine. It pops and runs
// jobs while the queue is non-empty, then waits on the condition
// variable for more work or shutdown.
func (p *Pool) routine() {
	defer p.wg.Done()

	p.queueMu.Lock()
	defer p.queueMu.Unlock()

	for {
		for len(p.queue) > 0 {
			job := p.queue[0]
			p.queue = p.queue[1:]
			p.busy++

			p.runJob(job)
		}

		if p.isShutdown {
			return
		}

		p.cond.Wait()
	}
}

// runJob releases the queue lock for the duration of job and
// reacquires it before returning, decrementing busy under the lock on
// every exit path -- including a job that panics. Callers must hold
// queueMu on entry and will find it held again on return.
func (p *Pool) runJob(job Job) {
	p.queueMu.Unlock()
	defer func() {
		p.queueMu.Lock()
		p.busy--
		recover()
	}()
	job()
}

// Shutdown signals every worker to stop once its queue is drained,
// then blocks until all workers have exited. It is idempotent: a
// second call returns immediately.
//
// After Shutdown returns, every job submitted before the call has run
// exactly once, no worker is alive, and no job submitted after the
// call will ever run.
func (p *Pool) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.queueMu.Lock()
		p.isShutdown = true
		p.cond.Broadcast()
		p.queueMu.Unlock()

		p.listMu.Lock()
		p.wg.Wait()
		p.listMu.Unlock()
	})
}
