// Package analyze runs independent position evaluations concurrently
// across a worker pool, the batch-analysis descendant of the teacher's
// bot-vs-bot session manager: instead of N concurrent games, it runs N
// concurrent evaluations of independent FEN positions.
package analyze

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/liyu-xiangqi/xiangqi/internal/board"
	"github.com/liyu-xiangqi/xiangqi/internal/search"
)

// maxConcurrency limits how many positions are evaluated simultaneously,
// preventing excessive CPU usage when a batch file is very large.
const maxConcurrency = 50

// MaxConcurrency returns the maximum number of concurrent evaluations.
// Exported for CLI display purposes.
func MaxConcurrency() int {
	return maxConcurrency
}

// CalculateDefaultConcurrency returns the recommended concurrency based on
// CPU count. It uses a tiered formula:
//   - numCPU <= 2: use numCPU
//   - numCPU <= 4: use numCPU * 1.5
//   - numCPU > 4: use numCPU * 2
//
// The result is capped at maxConcurrency and has a minimum of 1.
func CalculateDefaultConcurrency() int {
	return calculateDefaultConcurrencyWithCPU(runtime.NumCPU())
}

func calculateDefaultConcurrencyWithCPU(numCPU int) int {
	var concurrency int
	switch {
	case numCPU <= 2:
		concurrency = numCPU
	case numCPU <= 4:
		concurrency = int(float64(numCPU) * 1.5)
	default:
		concurrency = numCPU * 2
	}

	if concurrency > maxConcurrency {
		concurrency = maxConcurrency
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return concurrency
}

// Job is one position to evaluate: a FEN string and a search depth.
type Job struct {
	FEN   string
	Depth int
}

// Result is the outcome of evaluating one Job.
type Result struct {
	FEN      string
	Depth    int
	Score    board.Score
	PV       []board.PackedMove
	Nodes    uint64
	Elapsed  time.Duration
	ParseErr error
}

// SessionManager orchestrates concurrent evaluation of a batch of jobs.
// Each job runs against its own search.Engine instance; engines are never
// shared or reused across calls.
type SessionManager struct {
	mu          sync.Mutex
	jobs        []Job
	results     []Result
	concurrency int
	semaphore   chan struct{}
	abortCh     chan struct{}
	activeCount int32
	started     bool
}

// NewSessionManager creates a manager for the given jobs. If concurrency
// is 0, it auto-detects based on CPU count. Concurrency is capped at
// maxConcurrency and has a minimum of 1.
func NewSessionManager(jobs []Job, concurrency int) *SessionManager {
	effectiveConcurrency := concurrency
	if effectiveConcurrency == 0 {
		effectiveConcurrency = CalculateDefaultConcurrency()
	}
	if effectiveConcurrency > maxConcurrency {
		effectiveConcurrency = maxConcurrency
	}
	if effectiveConcurrency < 1 {
		effectiveConcurrency = 1
	}

	return &SessionManager{
		jobs:        jobs,
		results:     make([]Result, len(jobs)),
		concurrency: effectiveConcurrency,
	}
}

// Run evaluates all jobs concurrently and blocks until every launched job
// has completed, then returns the results in job order. After Abort, jobs
// not yet launched are skipped and keep a zero Result. Only the first call
// evaluates the jobs; later calls return the same results slice.
func (m *SessionManager) Run() []Result {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return m.results
	}
	m.started = true

	semaphoreSize := m.concurrency
	if len(m.jobs) < semaphoreSize {
		semaphoreSize = len(m.jobs)
	}
	if semaphoreSize < 1 {
		semaphoreSize = 1
	}
	m.semaphore = make(chan struct{}, semaphoreSize)
	m.abortCh = make(chan struct{})
	m.mu.Unlock()

	var wg sync.WaitGroup
schedule:
	for i, job := range m.jobs {
		select {
		case m.semaphore <- struct{}{}:
		case <-m.abortCh:
			break schedule
		}

		wg.Add(1)
		atomic.AddInt32(&m.activeCount, 1)
		go func(idx int, j Job) {
			defer func() {
				atomic.AddInt32(&m.activeCount, -1)
				<-m.semaphore
				wg.Done()
			}()
			m.results[idx] = evaluateJob(j)
		}(i, job)
	}

	wg.Wait()
	return m.results
}

// Abort signals in-flight scheduling to stop launching new jobs. Jobs
// already running are allowed to finish.
func (m *SessionManager) Abort() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.abortCh != nil {
		select {
		case <-m.abortCh:
		default:
			close(m.abortCh)
		}
	}
}

// RunningCount returns the number of jobs currently executing.
func (m *SessionManager) RunningCount() int {
	return int(atomic.LoadInt32(&m.activeCount))
}

// Concurrency returns the effective concurrency setting.
func (m *SessionManager) Concurrency() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.concurrency
}

func evaluateJob(j Job) Result {
	b, err := board.BoardFromFEN(j.FEN)
	if err != nil {
		return Result{FEN: j.FEN, Depth: j.Depth, ParseErr: err}
	}

	e := &search.Engine{}
	start := time.Now()
	r := e.EvalToDepth(b, j.Depth)
	elapsed := time.Since(start)

	return Result{
		FEN:     j.FEN,
		Depth:   j.Depth,
		Score:   r.Score,
		PV:      r.PV,
		Nodes:   r.Nodes,
		Elapsed: elapsed,
	}
}
