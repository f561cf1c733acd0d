package renderer

import (
	"runtime"
	"sync"

	"github.com/IndaPlus23/nilsmal-raytracer/pkg/core"
)

// BandTask is one contiguous band of pixel rows to trace
type BandTask struct {
	TaskID   int
	RowStart int
	RowEnd   int
}

// BandResult carries a rendered band's color batch back to the assembler
type BandResult struct {
	TaskID   int
	RowStart int
	RowEnd   int
	Colors   core.Vec3Batch
}

// WorkerPool renders disjoint row bands of the image in parallel. Bands are
// independent by construction: the scene is immutable during rendering and
// every ray's computation is read-only against it.
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool over the given raytracer and camera.
// maxTasks sizes the queues so submission never blocks.
func NewWorkerPool(rt *Raytracer, camera *Camera, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(rt, camera)
	}

	return wp
}

// run is the main worker loop
func (wp *WorkerPool) run(rt *Raytracer, camera *Camera) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		origin, dir := camera.Rays(task.RowStart, task.RowEnd)
		colors := rt.Trace(origin, dir, 0)

		wp.resultQueue <- BandResult{
			TaskID:   task.TaskID,
			RowStart: task.RowStart,
			RowEnd:   task.RowEnd,
			Colors:   colors,
		}
	}
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() BandResult {
	return <-wp.resultQueue
}

// Stop closes the task queue and waits for all workers to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
