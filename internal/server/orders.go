package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/giftlab/internal/models"
)

type orderItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	UserID          *int64             `json:"user_id"`
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	CustomerPhone   string             `json:"customer_phone" binding:"required"`
	CustomerAddress string             `json:"customer_address"`
	Comment         string             `json:"comment"`
	Total           float64            `json:"total" binding:"required"`
	HasComment      bool               `json:"has_comment"`
	Items           []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// createOrder places an order, guest or authenticated. Item prices arrive
// captured from the cart and are stored as-is; the entry status is decided
// by the store, not the client.
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer contact block, total and at least one item are required"})
		return
	}

	order := models.Order{
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Comment:         req.Comment,
		Total:           req.Total,
		HasComment:      req.HasComment,
	}
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := s.orders.CreateOrder(&order, items); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": order.ID, "status": order.Status})
}

// listOrders is the back-office view: optional status filter (where
// "pending" covers every non-terminal, non-cancelled order) and optional
// category filter.
func (s *Server) listOrders(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return
	}

	var categoryID int64
	if raw := c.Query("category_id"); raw != "" && raw != "all" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		categoryID = id
	}

	orders, err := s.orders.ListOrders(status, categoryID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) listUserOrders(c *gin.Context) {
	orders, err := s.orders.ListUserOrders(c.GetInt64(ctxUserID))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if err := s.orders.UpdateStatus(id, req.Status); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}

func (s *Server) updateOrderTotal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Total *float64 `json:"total" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total is required"})
		return
	}

	if err := s.orders.UpdateTotal(id, *req.Total); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order total updated"})
}
