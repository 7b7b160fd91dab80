package server

import (
	"github.com/gin-gonic/gin"

	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
)

func (s *Server) GetInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	invoice, err := s.invoicesvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, invoice)
}

func (s *Server) ListInvoices(c *gin.Context) {
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := parseIDQuery(c, "customer_id")
		if err != nil {
			abortWithValidation(c, err)
			return
		}
		invoices, err := s.invoicesvc.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		respondData(c, invoices)
		return
	}

	invoices, err := s.invoicesvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, invoices)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	var req invoicedomain.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidation(c, err)
		return
	}

	invoice, err := s.invoicesvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, invoice)
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	if err := s.invoicesvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": id.String()})
}
