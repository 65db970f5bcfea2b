package renderer

import (
	"runtime"
	"sync"
)

// BandTask is a slice of pass work over a half-open index range. Ranges in
// one pass never write the same pixels.
type BandTask struct {
	TaskID int
	Start  int
	End    int
	Render func(start, end int) int // Returns pixels traced
}

// BandResult reports a finished band
type BandResult struct {
	TaskID       int
	PixelsTraced int
}

// WorkerPool runs band tasks on a fixed set of goroutines
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	numWorkers  int
	wg          sync.WaitGroup
	started     bool
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// A pass submits at most a few bands per worker
	queueSize := numWorkers * 4

	return &WorkerPool{
		taskQueue:   make(chan BandTask, queueSize),
		resultQueue: make(chan BandResult, queueSize),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	if wp.started {
		return
	}
	wp.started = true
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	if !wp.started {
		return
	}
	wp.started = false
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// RunBands splits [0,n) into bands, renders them on the pool and waits for all
// of them. It returns the total pixels traced.
func (wp *WorkerPool) RunBands(n int, render func(start, end int) int) int {
	bands := splitBands(n, wp.numWorkers*2)

	// Submit from a goroutine so a small queue cannot deadlock against results
	go func() {
		for i, b := range bands {
			wp.SubmitTask(BandTask{TaskID: i, Start: b[0], End: b[1], Render: render})
		}
	}()

	total := 0
	for range bands {
		result, ok := wp.GetResult()
		if !ok {
			break
		}
		total += result.PixelsTraced
	}
	return total
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.resultQueue <- BandResult{
			TaskID:       task.TaskID,
			PixelsTraced: task.Render(task.Start, task.End),
		}
	}
}

// splitBands divides [0,n) into at most parts contiguous ranges. A trailing
// single-index band is merged into its neighbour so clamped writes to the last
// row stay inside one band.
func splitBands(n, parts int) [][2]int {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))
	size := (n + parts - 1) / parts

	var bands [][2]int
	for start := 0; start < n; start += size {
		bands = append(bands, [2]int{start, min(start+size, n)})
	}
	if last := len(bands) - 1; last > 0 && bands[last][1]-bands[last][0] == 1 {
		bands[last-1][1] = bands[last][1]
		bands = bands[:last]
	}
	return bands
}
