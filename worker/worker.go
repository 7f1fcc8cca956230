package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"travel-concierge/api/logger"
	"travel-concierge/api/models"
	"travel-concierge/api/sse"

	"go.uber.org/zap"
)

// WorkerPool fans agent events out to SSE subscribers. Jobs are partitioned
// by Kafka partition so events for one session stay ordered.
type WorkerPool struct {
	workers    int
	partitions []chan []byte
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc

	// Metrics
	mu                 sync.RWMutex
	eventsProcessed    uint64
	processingDuration uint64
	bufferFillLevels   []uint64
	eventsDropped      uint64
}

func NewWorkerPool(workers int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	partitions := make([]chan []byte, workers)
	bufferLevels := make([]uint64, workers)
	for i := range partitions {
		partitions[i] = make(chan []byte, 100) // Buffer size of 100 per partition
	}
	return &WorkerPool{
		workers:          workers,
		partitions:       partitions,
		ctx:              ctx,
		cancelFunc:       cancel,
		bufferFillLevels: bufferLevels,
	}
}

func (wp *WorkerPool) Start() {
	logger.Get().Info("Starting worker pool", zap.Int("workers", wp.workers))
	for i := range wp.partitions {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) Stop() {
	logger.Get().Info("Stopping worker pool")
	wp.cancelFunc()
	for _, ch := range wp.partitions {
		close(ch)
	}
	wp.wg.Wait()
}

func (wp *WorkerPool) Submit(job []byte, partition int32) {
	if int(partition) >= len(wp.partitions) {
		wp.mu.Lock()
		wp.eventsDropped++
		wp.mu.Unlock()
		logger.Get().Error("Invalid partition number",
			zap.Int32("partition", partition),
			zap.Int("max_partitions", len(wp.partitions)))
		return
	}

	wp.mu.Lock()
	wp.bufferFillLevels[partition]++
	wp.mu.Unlock()

	select {
	case wp.partitions[partition] <- job:
		logger.Get().Debug("Job submitted to worker pool",
			zap.Int32("partition", partition))
	case <-wp.ctx.Done():
		wp.mu.Lock()
		wp.eventsDropped++
		wp.mu.Unlock()
		logger.Get().Warn("Worker pool is stopped, job not submitted")
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()
	logger.Get().Info("Worker started", zap.Int("worker_id", id))

	for {
		select {
		case job, ok := <-wp.partitions[id]:
			if !ok {
				logger.Get().Info("Worker stopping", zap.Int("worker_id", id))
				return
			}

			wp.mu.Lock()
			wp.bufferFillLevels[id]--
			wp.mu.Unlock()

			startTime := time.Now()

			var event models.AgentEvent
			if err := json.Unmarshal(job, &event); err != nil {
				wp.mu.Lock()
				wp.eventsDropped++
				wp.mu.Unlock()
				logger.Get().Error("Failed to unmarshal agent event",
					zap.Int("worker_id", id),
					zap.Error(err))
				continue
			}

			logger.Get().Debug("Processing agent event",
				zap.Int("worker_id", id),
				zap.String("session_id", event.SessionID))

			sse.SendEventToClient(event.SessionID, string(job))

			wp.mu.Lock()
			wp.eventsProcessed++
			wp.processingDuration += uint64(time.Since(startTime).Milliseconds())
			wp.mu.Unlock()

		case <-wp.ctx.Done():
			logger.Get().Info("Worker stopping due to context cancellation",
				zap.Int("worker_id", id))
			return
		}
	}
}

// MetricsHandler returns the current metrics as JSON
func (wp *WorkerPool) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	var avgProcessingTime float64
	if wp.eventsProcessed > 0 {
		avgProcessingTime = float64(wp.processingDuration) / float64(wp.eventsProcessed)
	}

	metrics := map[string]any{
		"events_processed":  wp.eventsProcessed,
		"events_dropped":    wp.eventsDropped,
		"avg_processing_ms": avgProcessingTime,
		"buffer_levels":     wp.bufferFillLevels,
		"active_workers":    wp.workers,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics)
}
