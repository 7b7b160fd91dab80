package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
	"github.com/basssoft/arms/internal/invoice/factory"
)

// GenerateInvoice consolidates the outstanding bookings of one
// provider/customer pair. A pair with nothing outstanding is a 404, not a
// server error.
func (s *Server) GenerateInvoice(c *gin.Context) {
	providerID, err := parseIDQuery(c, "provider_id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}
	customerID, err := parseIDQuery(c, "customer_id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	invoice, err := s.factory.GenerateInvoice(c.Request.Context(), providerID, customerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if invoice == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "no_outstanding_bookings"})
		return
	}
	respondData(c, invoice)
}

// GenerateAllInvoices runs the bulk workflow and returns every invoice that
// was generated. Customers that failed after retries were skipped and logged;
// the response still carries the successes.
func (s *Server) GenerateAllInvoices(c *gin.Context) {
	providerID, err := parseIDQuery(c, "provider_id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	stream, err := s.factory.GenerateAllOutstanding(c.Request.Context(), providerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoices := make([]*invoicedomain.Invoice, 0)
	for invoice := range stream.Invoices() {
		invoices = append(invoices, invoice)
	}
	if err := stream.Err(); err != nil {
		s.log.Error("bulk invoice generation aborted",
			zap.String("provider_id", providerID.String()),
			zap.Error(err),
		)
		if errors.Is(err, factory.ErrDeliveryOverflow) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		AbortWithError(c, err)
		return
	}

	respondData(c, invoices)
}
