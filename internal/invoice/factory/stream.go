package factory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
)

// ErrDeliveryOverflow means the consumer failed to drain the result buffer
// within the configured drain window even with production paused.
var ErrDeliveryOverflow = errors.New("invoice_delivery_overflow")

// InvoiceStream carries the results of one bulk generation run. Invoices
// arrive in no particular order relative to customer discovery. The channel
// closes when the batch is done; Err then reports whether it ended cleanly or
// died on a batch-fatal condition. A stream is consumed once; re-invoke the
// factory to regenerate.
type InvoiceStream struct {
	out  chan *invoicedomain.Invoice
	done chan struct{}
	err  error
}

func (s *InvoiceStream) Invoices() <-chan *invoicedomain.Invoice {
	return s.out
}

// Err blocks until the batch has finished draining.
func (s *InvoiceStream) Err() error {
	<-s.done
	return s.err
}

// GenerateAllOutstanding generates one invoice per outstanding customer of
// the provider. Discovery failure is fatal and returned synchronously; after
// that, per-customer failures are retried with exponential backoff and then
// skipped, never aborting the batch. Customers with nothing outstanding are
// silently omitted. Cancelling ctx stops scheduling new customers and
// unblocks in-flight backoff sleeps and delivery sends.
func (f *Factory) GenerateAllOutstanding(ctx context.Context, providerID snowflake.ID) (*InvoiceStream, error) {
	customerIDs, err := f.bookings.OutstandingCustomerIDs(ctx, providerID)
	if err != nil {
		return nil, err
	}

	stream := &InvoiceStream{
		out:  make(chan *invoicedomain.Invoice, f.cfg.BufferSize),
		done: make(chan struct{}),
	}

	batchCtx, cancel := context.WithCancel(ctx)

	jobs := make(chan snowflake.ID)
	var wg sync.WaitGroup
	var fatalOnce sync.Once
	fatal := func(err error) {
		fatalOnce.Do(func() {
			stream.err = err
			cancel()
		})
	}

	for i := 0; i < f.cfg.FanOut; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for customerID := range jobs {
				invoice, err := f.generateWithRetry(batchCtx, providerID, customerID)
				if err != nil {
					if batchCtx.Err() != nil {
						return
					}
					customersSkipped.Inc()
					f.log.Warn("customer skipped after exhausted retries",
						zap.String("provider_id", providerID.String()),
						zap.String("customer_id", customerID.String()),
						zap.Error(err),
					)
					continue
				}
				if invoice == nil {
					continue
				}
				if err := f.deliver(batchCtx, stream.out, invoice); err != nil {
					fatal(err)
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, customerID := range customerIDs {
			select {
			case jobs <- customerID:
			case <-batchCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		if stream.err == nil && ctx.Err() != nil {
			stream.err = ctx.Err()
		}
		cancel()
		close(stream.out)
		close(stream.done)
	}()

	return stream, nil
}

// generateWithRetry wraps GenerateInvoice in the bulk retry policy. A
// (nil, nil) empty result returns immediately without retrying; only real
// store failures are retried.
func (f *Factory) generateWithRetry(ctx context.Context, providerID, customerID snowflake.ID) (*invoicedomain.Invoice, error) {
	for attempt := 0; ; attempt++ {
		invoice, err := f.GenerateInvoice(ctx, providerID, customerID)
		if err == nil {
			return invoice, nil
		}
		if attempt >= f.cfg.MaxRetries {
			return nil, err
		}
		if serr := f.sleep(ctx, f.cfg.BaseBackoff<<attempt); serr != nil {
			return nil, serr
		}
	}
}

func (f *Factory) deliver(ctx context.Context, out chan<- *invoicedomain.Invoice, invoice *invoicedomain.Invoice) error {
	if f.cfg.DrainTimeout <= 0 {
		select {
		case out <- invoice:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	timer := time.NewTimer(f.cfg.DrainTimeout)
	defer timer.Stop()
	select {
	case out <- invoice:
		return nil
	case <-timer.C:
		return ErrDeliveryOverflow
	case <-ctx.Done():
		return ctx.Err()
	}
}
