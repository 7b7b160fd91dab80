package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	accountdomain "github.com/basssoft/arms/internal/account/domain"
	"github.com/basssoft/arms/internal/auth"
	bookingdomain "github.com/basssoft/arms/internal/booking/domain"
	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
)

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// AbortWithError maps domain sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with an opaque body.
func AbortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, accountdomain.ErrAccountNotFound),
		errors.Is(err, bookingdomain.ErrBookingNotFound),
		errors.Is(err, invoicedomain.ErrInvoiceNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, accountdomain.ErrScreenNameTaken),
		errors.Is(err, accountdomain.ErrEmailTaken),
		errors.Is(err, invoicedomain.ErrBookingAlreadyInvoiced):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, accountdomain.ErrInvalidAccount),
		errors.Is(err, bookingdomain.ErrInvalidBooking),
		errors.Is(err, bookingdomain.ErrInvalidTimeSpan):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidRefreshToken):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}

type validationError struct {
	field   string
	code    string
	message string
}

func newValidationError(field, code, message string) error {
	return &validationError{field: field, code: code, message: message}
}

func (e *validationError) Error() string {
	return e.message
}

func abortWithValidation(c *gin.Context, err error) {
	var verr *validationError
	if errors.As(err, &verr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": verr.message,
			"field": verr.field,
			"code":  verr.code,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
