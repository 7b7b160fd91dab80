package server

import (
	"github.com/gin-gonic/gin"

	bookingdomain "github.com/basssoft/arms/internal/booking/domain"
)

func (s *Server) CreateBooking(c *gin.Context) {
	var req bookingdomain.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidation(c, err)
		return
	}

	booking, err := s.bookingsvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, booking)
}

func (s *Server) GetBooking(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	booking, err := s.bookingsvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, booking)
}

func (s *Server) ListBookings(c *gin.Context) {
	customerID, err := parseIDQuery(c, "customer_id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	bookings, err := s.bookingsvc.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, bookings)
}

func (s *Server) UpdateBooking(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	var req bookingdomain.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidation(c, err)
		return
	}

	booking, err := s.bookingsvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, booking)
}

func (s *Server) DeleteBooking(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	if err := s.bookingsvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": id.String()})
}
