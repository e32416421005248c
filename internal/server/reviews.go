package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/giftlab/internal/models"
)

func (s *Server) listReviews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reviews, err := s.reviews.ListByProduct(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type reviewRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

func (s *Server) createReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_name is required"})
		return
	}

	review := models.Review{
		ProductID:    id,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.reviews.CreateReview(&review); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
