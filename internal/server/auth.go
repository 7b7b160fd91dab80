package server

import (
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	ScreenName string `json:"screen_name" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidation(c, err)
		return
	}

	pair, err := s.authsvc.Login(c.Request.Context(), req.ScreenName, req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, pair)
}

func (s *Server) RefreshTokens(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidation(c, err)
		return
	}

	pair, err := s.authsvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, pair)
}
