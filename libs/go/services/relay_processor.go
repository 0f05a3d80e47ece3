package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amped-finance/amped-api/libs/go/db"
	"github.com/amped-finance/amped-api/libs/go/interfaces"
	"github.com/amped-finance/amped-api/libs/go/logger"
	"github.com/amped-finance/amped-api/libs/go/metrics"
	"github.com/amped-finance/amped-api/libs/go/middleware"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/amped-finance/amped-api/libs/go/types/business"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrRelayQueueFull   = errors.New("relay queue is full, try again later")
	ErrRelayCircuitOpen = errors.New("relay is paused after repeated failures, try again later")
	ErrRelayStopped     = errors.New("relay processor is stopped")
)

// RelayProcessorConfig sizes the worker pool and the circuit breaker.
type RelayProcessorConfig struct {
	Workers          int
	QueueSize        int
	FailureThreshold int
	ResetTimeout     time.Duration
	EnqueueTimeout   time.Duration
	// Relayer is recorded against every submission when set.
	Relayer *common.Address
}

func (c RelayProcessorConfig) withDefaults() RelayProcessorConfig {
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 100
	}
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = 3
	}
	if c.ResetTimeout <= 0 {
		c.ResetTimeout = time.Minute
	}
	if c.EnqueueTimeout <= 0 {
		c.EnqueueTimeout = 2 * time.Second
	}
	return c
}

// RelayProcessor submits queued delegated stakes through the staking
// service. A task is attempted exactly once: after the signature check the
// nonce is spent, so a failed task is reported and never resubmitted.
type RelayProcessor struct {
	tasks    chan business.RelayTask
	staking  interfaces.StakingService
	metrics  *metrics.Metrics
	cfg      RelayProcessorConfig
	onResult func(business.RelayResult)
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc

	// Circuit breaker for collaborator and transport failures
	mu                  sync.Mutex
	circuitOpen         bool
	consecutiveFailures int
	openedAt            time.Time
	now                 func() time.Time
}

var _ interfaces.RelayQueue = (*RelayProcessor)(nil)

// NewRelayProcessor creates a processor; call Start to launch the workers.
func NewRelayProcessor(staking interfaces.StakingService, cfg RelayProcessorConfig, m *metrics.Metrics) *RelayProcessor {
	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	return &RelayProcessor{
		tasks:   make(chan business.RelayTask, cfg.QueueSize),
		staking: staking,
		metrics: m,
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		now:     time.Now,
	}
}

// OnResult registers a callback invoked after every processed task.
func (rp *RelayProcessor) OnResult(fn func(business.RelayResult)) {
	rp.onResult = fn
}

// Start launches the worker goroutines.
func (rp *RelayProcessor) Start() {
	logger.Info("Starting relay processor",
		zap.Int("worker_count", rp.cfg.Workers),
		zap.Int("queue_size", rp.cfg.QueueSize),
	)

	for i := 0; i < rp.cfg.Workers; i++ {
		workerID := i
		rp.wg.Add(1)

		go func() {
			defer rp.wg.Done()
			logger.Debug("Relay worker started", zap.Int("worker_id", workerID))

			for {
				select {
				case <-rp.ctx.Done():
					logger.Debug("Relay worker stopped", zap.Int("worker_id", workerID))
					return
				case task := <-rp.tasks:
					rp.setQueueDepth()
					rp.Process(rp.ctx, task)
				}
			}
		}()
	}
}

// Stop cancels the workers and waits for in-flight tasks. Tasks still in
// the queue are dropped; their authorizations were never submitted.
func (rp *RelayProcessor) Stop() {
	logger.Info("Stopping relay processor", zap.Int("pending", len(rp.tasks)))
	rp.cancel()
	rp.wg.Wait()
	logger.Info("Relay processor stopped")
}

// Enqueue adds a task to the queue. It fails fast while the breaker is open
// and gives up after the enqueue timeout when the queue is full.
func (rp *RelayProcessor) Enqueue(ctx context.Context, task business.RelayTask) error {
	if rp.ctx.Err() != nil {
		return ErrRelayStopped
	}
	if !rp.allow() {
		return ErrRelayCircuitOpen
	}
	if task.CorrelationID == "" {
		task.CorrelationID = middleware.CorrelationIDFromContext(ctx)
	}

	timer := time.NewTimer(rp.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case rp.tasks <- task:
		rp.setQueueDepth()
		logger.Debug("Relay task queued",
			logger.TaskID(task.ID),
			logger.Account(task.Account),
		)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrRelayQueueFull
	}
}

// Process submits one task synchronously. Workers call it for queued tasks;
// the SQS consumer calls it directly.
func (rp *RelayProcessor) Process(ctx context.Context, task business.RelayTask) business.RelayResult {
	start := rp.now()
	if task.CorrelationID != "" {
		ctx = middleware.WithCorrelationID(ctx, task.CorrelationID)
	}
	log := middleware.LogWithCorrelationID(ctx).With(
		logger.TaskID(task.ID),
		logger.Account(task.Account),
	)

	result := business.RelayResult{TaskID: task.ID}
	if enabled, err := rp.staking.SwapEnabled(); err == nil && !enabled {
		// Submitting now would spend the account's nonce on a stake that
		// cannot complete.
		result.Err = &stakingrouter.CollaboratorError{Op: "swap", Err: stakingrouter.ErrSwapDisabled}
		log.Warn("Skipping relay task while swap is disabled")
		rp.finish(result, start, "skipped")
		return result
	}

	result.Receipt, result.Err = rp.staking.StakeForAccount(ctx, business.DelegatedStake{
		Account:       task.Account,
		Amount:        task.Amount,
		Deadline:      task.Deadline,
		Signature:     task.Signature,
		Relayer:       rp.cfg.Relayer,
		CorrelationID: task.CorrelationID,
	})

	outcome := db.OutcomeFor(result.Err)
	switch outcome {
	case db.AuthorizationOutcomeStaked:
		rp.recordSuccess()
		log.Info("Relay task staked")
	case db.AuthorizationOutcomeExpired, db.AuthorizationOutcomeInvalid:
		// the signer's problem, not the relay's
		log.Info("Relay task rejected", zap.Error(result.Err))
	default:
		rp.recordFailure()
		log.Error("Relay task failed", zap.Error(result.Err))
	}

	rp.finish(result, start, string(outcome))
	return result
}

// CircuitOpen reports whether the breaker is currently rejecting tasks.
func (rp *RelayProcessor) CircuitOpen() bool {
	return !rp.allow()
}

func (rp *RelayProcessor) finish(result business.RelayResult, start time.Time, outcome string) {
	if rp.metrics != nil {
		rp.metrics.RelayResults.WithLabelValues(outcome).Inc()
		rp.metrics.RelayDuration.Observe(rp.now().Sub(start).Seconds())
	}
	if rp.onResult != nil {
		rp.onResult(result)
	}
}

// allow reports whether tasks are accepted, closing the breaker once the
// reset timeout has passed.
func (rp *RelayProcessor) allow() bool {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	if !rp.circuitOpen {
		return true
	}
	if rp.now().Sub(rp.openedAt) < rp.cfg.ResetTimeout {
		return false
	}
	logger.Info("Closing relay circuit breaker after cooldown",
		zap.Duration("open_for", rp.now().Sub(rp.openedAt)),
	)
	rp.circuitOpen = false
	rp.consecutiveFailures = 0
	rp.setBreakerGauge(false)
	return true
}

func (rp *RelayProcessor) recordSuccess() {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	rp.consecutiveFailures = 0
}

func (rp *RelayProcessor) recordFailure() {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	rp.consecutiveFailures++
	if rp.consecutiveFailures >= rp.cfg.FailureThreshold && !rp.circuitOpen {
		logger.Warn("Opening relay circuit breaker due to consecutive failures",
			zap.Int("failures", rp.consecutiveFailures),
			zap.Duration("reset_timeout", rp.cfg.ResetTimeout),
		)
		rp.circuitOpen = true
		rp.openedAt = rp.now()
		rp.setBreakerGauge(true)
	}
}

func (rp *RelayProcessor) setBreakerGauge(open bool) {
	if rp.metrics == nil {
		return
	}
	if open {
		rp.metrics.BreakerOpen.Set(1)
	} else {
		rp.metrics.BreakerOpen.Set(0)
	}
}

func (rp *RelayProcessor) setQueueDepth() {
	if rp.metrics != nil {
		rp.metrics.RelayQueueDepth.Set(float64(len(rp.tasks)))
	}
}

// Retryable reports whether a task that ended with err may be delivered
// again. Once an authorization's nonce is consumed the same signature can
// never be accepted, so those results are final.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var consumed *stakingrouter.ConsumedAuthorizationError
	if errors.As(err, &consumed) {
		return false
	}
	switch {
	case errors.Is(err, stakingrouter.ErrExpiredAuthorization),
		errors.Is(err, stakingrouter.ErrInvalidAuthorization),
		errors.Is(err, stakingrouter.ErrInvalidAmount):
		return false
	}
	return true
}
