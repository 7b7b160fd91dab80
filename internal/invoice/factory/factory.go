package factory

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"

	bookingdomain "github.com/basssoft/arms/internal/booking/domain"
	appconfig "github.com/basssoft/arms/internal/config"
	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
)

// BookingSource is the slice of the booking store the factory reads from.
// Satisfied by bookingdomain.Repository.
type BookingSource interface {
	FindOutstanding(ctx context.Context, providerID, customerID snowflake.ID) ([]*bookingdomain.Booking, error)
	OutstandingCustomerIDs(ctx context.Context, providerID snowflake.ID) ([]snowflake.ID, error)
}

// InvoiceSink persists generated invoices. Satisfied by
// invoicedomain.Repository.
type InvoiceSink interface {
	Insert(ctx context.Context, invoice *invoicedomain.Invoice) error
}

type Config struct {
	// FanOut caps simultaneous in-flight aggregations during a bulk run so a
	// provider with many outstanding customers cannot flood the stores.
	FanOut int

	// MaxRetries is the number of retries after a failed attempt; negative
	// disables retry entirely. BaseBackoff is the first retry's delay,
	// doubling per attempt.
	MaxRetries  int
	BaseBackoff time.Duration

	// BufferSize bounds the result channel. A full buffer pauses producers.
	BufferSize int

	// DrainTimeout is how long a producer waits on a full buffer before the
	// batch fails with ErrDeliveryOverflow. Zero or negative blocks
	// indefinitely (cancellation still applies).
	DrainTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.FanOut <= 0 {
		c.FanOut = 5
	}
	switch {
	case c.MaxRetries == 0:
		c.MaxRetries = 3
	case c.MaxRetries < 0:
		c.MaxRetries = 0
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 200 * time.Millisecond
	}
	if c.BufferSize <= 0 {
		c.BufferSize = 100
	}
	return c
}

// Factory generates invoices from outstanding bookings, one provider/customer
// pair at a time or in bulk across every outstanding customer of a provider.
// It only reads bookings; the single write is the invoice insert.
type Factory struct {
	log      *zap.Logger
	genID    *snowflake.Node
	bookings BookingSource
	invoices InvoiceSink
	cfg      Config

	// injectable so retry tests do not wait out real backoff delays
	sleep func(ctx context.Context, d time.Duration) error
}

type Param struct {
	fx.In

	Log      *zap.Logger
	GenID    *snowflake.Node
	Cfg      *appconfig.Config
	Bookings bookingdomain.Repository
	Invoices invoicedomain.Repository
}

func New(p Param) *Factory {
	return NewFactory(p.Log, p.GenID, p.Bookings, p.Invoices, Config{
		FanOut:       p.Cfg.FactoryFanOut,
		MaxRetries:   p.Cfg.FactoryMaxRetries,
		BaseBackoff:  p.Cfg.FactoryBaseBackoff,
		BufferSize:   p.Cfg.FactoryBufferSize,
		DrainTimeout: p.Cfg.FactoryDrainTimeout,
	})
}

func NewFactory(log *zap.Logger, genID *snowflake.Node, bookings BookingSource, invoices InvoiceSink, cfg Config) *Factory {
	return &Factory{
		log:      log.Named("invoice.factory"),
		genID:    genID,
		bookings: bookings,
		invoices: invoices,
		cfg:      cfg.withDefaults(),
		sleep:    sleepContext,
	}
}

var millisPerHour = decimal.NewFromInt(3_600_000)

// LineAmount computes the billable amount for a single booking:
// hourly rate times max(0, span hours + over-hours adjustment), with span
// hours at 6 fractional digits, half-up. A missing or inverted time span
// contributes zero hours rather than an error, so one corrupt booking cannot
// block an entire invoice run.
func LineAmount(b *bookingdomain.Booking) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}

	var dur time.Duration
	if !b.StartTime.IsZero() && !b.EndTime.IsZero() {
		dur = b.EndTime.Sub(b.StartTime)
	}
	if dur < 0 {
		dur = 0
	}

	hours := decimal.NewFromInt(dur.Milliseconds()).DivRound(millisPerHour, 6)
	total := hours.Add(b.OverHours)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return b.HourlyRate.Mul(total)
}

// GenerateInvoice aggregates every completed, unpaid booking between the pair
// into one persisted invoice. A pair with nothing outstanding yields
// (nil, nil): a legitimate skip, not a failure. Store errors, including the
// persistence write, propagate to the caller untouched; retry is a bulk-run
// concern only.
func (f *Factory) GenerateInvoice(ctx context.Context, providerID, customerID snowflake.ID) (*invoicedomain.Invoice, error) {
	bookings, err := f.bookings.FindOutstanding(ctx, providerID, customerID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}

	total := decimal.Zero
	bookingIDs := make([]snowflake.ID, 0, len(bookings))
	for _, b := range bookings {
		total = total.Add(LineAmount(b))
		bookingIDs = append(bookingIDs, b.ID)
	}

	invoice := &invoicedomain.Invoice{
		ID:             f.genID.Generate(),
		ProviderID:     providerID,
		CustomerID:     customerID,
		TotalAmountDue: total.Round(2),
		BookingIDs:     bookingIDs,
	}

	if err := f.invoices.Insert(ctx, invoice); err != nil {
		return nil, err
	}

	invoicesGenerated.Inc()
	f.log.Info("invoice generated",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("provider_id", providerID.String()),
		zap.String("customer_id", customerID.String()),
		zap.Int("bookings", len(bookingIDs)),
		zap.String("total_amount_due", invoice.TotalAmountDue.String()),
	)
	return invoice, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
