package receipt

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
)

// Source loads receipt data and records where the rendered file was stored.
type Source interface {
	ReceiptData(ctx context.Context, citaID string) (Data, error)
	SaveReceiptKey(ctx context.Context, citaID, key string) error
}

type Dispatcher struct {
	source   Source
	uploader storage.Uploader
	log      *zap.Logger
	queue    chan string
	done     chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(source Source, uploader storage.Uploader, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		source:   source,
		uploader: uploader,
		log:      log,
		queue:    make(chan string, 100),
		done:     make(chan struct{}),
	}
	go d.worker()
	return d
}

// Enqueue never blocks the request path. Work arriving after Close is
// dropped.
func (d *Dispatcher) Enqueue(citaID string) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.BackgroundDropped.WithLabelValues("receipt").Inc()
		d.log.Warn("receipt dispatcher closed, dropping", zap.String("cita_id", citaID))
		return
	}

	select {
	case d.queue <- citaID:
	default:
		metrics.BackgroundDropped.WithLabelValues("receipt").Inc()
		d.log.Warn("receipt queue full, dropping", zap.String("cita_id", citaID))
	}
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for citaID := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := d.process(ctx, citaID); err != nil {
			d.log.Error("receipt failed", zap.String("cita_id", citaID), zap.Error(err))
		}
		cancel()
	}
}

func (d *Dispatcher) process(ctx context.Context, citaID string) error {
	data, err := d.source.ReceiptData(ctx, citaID)
	if err != nil {
		return err
	}

	pdf, err := Render(data)
	if err != nil {
		return err
	}

	key := storage.ReceiptKey(data.SedeID, citaID)
	if err := d.uploader.Put(ctx, key, "application/pdf", pdf); err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			d.log.Debug("receipt storage disabled", zap.String("cita_id", citaID))
			return nil
		}
		return err
	}

	return d.source.SaveReceiptKey(ctx, citaID, key)
}

// Close stops accepting work and waits for queued receipts.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}
