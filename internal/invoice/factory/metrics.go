package factory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	invoicesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "arms",
		Subsystem: "invoice_factory",
		Name:      "invoices_generated_total",
		Help:      "Invoices successfully generated and persisted.",
	})
	customersSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "arms",
		Subsystem: "invoice_factory",
		Name:      "customers_skipped_total",
		Help:      "Customers skipped during bulk generation after exhausted retries.",
	})
)
