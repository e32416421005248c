package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/giftlab/internal/models"
)

// --- Categories ---

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.catalog.ListCategories()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	HasComments bool   `json:"has_comments"`
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		HasComments: req.HasComments,
	}
	if err := s.catalog.CreateCategory(&category); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category := models.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		HasComments: req.HasComments,
	}
	if err := s.catalog.UpdateCategory(&category); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.catalog.DeleteCategory(id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// --- Subcategories ---

func (s *Server) listSubcategories(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	subcategories, err := s.catalog.ListSubcategories(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

func (s *Server) listAllSubcategories(c *gin.Context) {
	subcategories, err := s.catalog.ListAllSubcategories()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

type subcategoryRequest struct {
	ParentID    int64  `json:"parent_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (s *Server) createSubcategory(c *gin.Context) {
	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parent_id and name are required"})
		return
	}

	subcategory := models.Subcategory{
		ParentID:    req.ParentID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.catalog.CreateSubcategory(&subcategory); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subcategory)
}

func (s *Server) updateSubcategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parent_id and name are required"})
		return
	}

	subcategory := models.Subcategory{
		ID:          id,
		ParentID:    req.ParentID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.catalog.UpdateSubcategory(&subcategory); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

func (s *Server) deleteSubcategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.catalog.DeleteSubcategory(id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subcategory deleted"})
}

// --- Products ---

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.catalog.ListProducts()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listSubcategoryProducts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	products, err := s.catalog.ListProductsBySubcategory(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := s.catalog.GetProduct(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

type productRequest struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	PriceFrom     bool    `json:"price_from"`
	SubcategoryID int64   `json:"subcategory_id" binding:"required"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	IsHit         bool    `json:"is_hit"`
	IsNew         bool    `json:"is_new"`
}

func (s *Server) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and subcategory_id are required"})
		return
	}

	product := models.Product{
		Name:          req.Name,
		Price:         req.Price,
		PriceFrom:     req.PriceFrom,
		SubcategoryID: req.SubcategoryID,
		Description:   req.Description,
		Image:         req.Image,
		IsHit:         req.IsHit,
		IsNew:         req.IsNew,
	}
	if err := s.catalog.CreateProduct(&product); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and subcategory_id are required"})
		return
	}

	product := models.Product{
		ID:            id,
		Name:          req.Name,
		Price:         req.Price,
		PriceFrom:     req.PriceFrom,
		SubcategoryID: req.SubcategoryID,
		Description:   req.Description,
		Image:         req.Image,
		IsHit:         req.IsHit,
		IsNew:         req.IsNew,
	}
	if err := s.catalog.UpdateProduct(&product); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.catalog.DeleteProduct(id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
