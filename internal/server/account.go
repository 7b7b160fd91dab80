package server

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	accountdomain "github.com/basssoft/arms/internal/account/domain"
)

func parseIDParam(c *gin.Context, name string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(c.Param(name))
	if err != nil {
		return 0, newValidationError(name, "invalid_id", name+" must be a valid id")
	}
	return id, nil
}

func parseIDQuery(c *gin.Context, name string) (snowflake.ID, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, newValidationError(name, "required", name+" is required")
	}
	id, err := snowflake.ParseString(raw)
	if err != nil {
		return 0, newValidationError(name, "invalid_id", name+" must be a valid id")
	}
	return id, nil
}

func (s *Server) CreateAccount(c *gin.Context) {
	var req accountdomain.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidation(c, err)
		return
	}

	account, err := s.accountsvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, account)
}

func (s *Server) GetAccount(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	account, err := s.accountsvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, account)
}

func (s *Server) ListAccounts(c *gin.Context) {
	accounts, err := s.accountsvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, accounts)
}

func (s *Server) UpdateAccount(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	var req accountdomain.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidation(c, err)
		return
	}

	account, err := s.accountsvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, account)
}

func (s *Server) DeleteAccount(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithValidation(c, err)
		return
	}

	if err := s.accountsvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": id.String()})
}
