package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/matthieukhl/giftlab/internal/database"
	"github.com/matthieukhl/giftlab/internal/models"
)

// OrderStore creates orders and drives their status lifecycle.
type OrderStore struct {
	db *database.DB
}

func NewOrderStore(db *database.DB) *OrderStore {
	return &OrderStore{db: db}
}

// CreateOrder persists the order row and all item rows in one transaction.
// A failure on any item insert rolls back the whole order, so a partial
// order is never visible to readers.
//
// The entry status is decided here: under_review when the checkout carries a
// comment requirement, awaiting_payment otherwise. Whatever status the
// client sent is ignored. original_total records the checkout total and is
// never updated again.
func (s *OrderStore) CreateOrder(o *models.Order, items []models.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}

	if o.HasComment {
		o.Status = models.OrderStatusUnderReview
	} else {
		o.Status = models.OrderStatusAwaitingPayment
	}
	o.OriginalTotal = o.Total
	o.CreatedAt = time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO orders (user_id, customer_name, customer_email, customer_phone,
			customer_address, comment, total, original_total, has_comment, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.UserID, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.CustomerAddress, o.Comment, o.Total, o.OriginalTotal, o.HasComment,
		o.Status, toMillis(o.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read order id: %w", err)
	}

	for i := range items {
		items[i].OrderID = orderID
		_, err := tx.Exec(`
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES (?, ?, ?, ?)`,
			orderID, items[i].ProductID, items[i].Quantity, items[i].Price)
		if isForeignKeyViolation(err) {
			return ErrInvalidReference
		}
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	o.ID = orderID
	o.Items = items
	return nil
}

// ListOrders returns orders for the back office, newest first, each enriched
// with its items and their catalog context.
//
// The "pending" status filter expands to every non-terminal, non-cancelled
// status. The category filter is applied in memory after the item join: an
// order matches iff at least one of its items belongs to that category.
func (s *OrderStore) ListOrders(status string, categoryID int64) ([]models.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders"
	var args []any

	if status != "" {
		if status == models.OrderStatusPending {
			placeholders := strings.Repeat("?, ", len(models.PendingGroup)-1) + "?"
			query += " WHERE status IN (" + placeholders + ")"
			for _, st := range models.PendingGroup {
				args = append(args, st)
			}
		} else {
			query += " WHERE status = ?"
			args = append(args, status)
		}
	}
	query += " ORDER BY created_at DESC, id DESC"

	orders, err := s.queryOrders(query, args...)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := s.itemsForOrder(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	if categoryID == 0 {
		return orders, nil
	}
	filtered := []models.Order{}
	for _, o := range orders {
		for _, item := range o.Items {
			if item.CategoryID == categoryID {
				filtered = append(filtered, o)
				break
			}
		}
	}
	return filtered, nil
}

// ListUserOrders returns a user's own orders, newest first, items enriched
// with product name and image.
func (s *OrderStore) ListUserOrders(userID int64) ([]models.Order, error) {
	orders, err := s.queryOrders(
		"SELECT "+orderColumns+" FROM orders WHERE user_id = ? ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		items, err := s.itemsForOrder(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// UpdateStatus overwrites the order status. Any member of the closed status
// set may replace any other; there is no transition graph.
func (s *OrderStore) UpdateStatus(id int64, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	res, err := s.db.Exec("UPDATE orders SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return requireRowsAffected(res)
}

// UpdateTotal overwrites the authoritative total. original_total keeps the
// checkout-time value for auditing.
func (s *OrderStore) UpdateTotal(id int64, total float64) error {
	res, err := s.db.Exec("UPDATE orders SET total = ? WHERE id = ?", total, id)
	if err != nil {
		return fmt.Errorf("failed to update order total: %w", err)
	}
	return requireRowsAffected(res)
}

const orderColumns = `id, user_id, customer_name, customer_email, customer_phone,
	customer_address, comment, total, original_total, has_comment, status, created_at`

func (s *OrderStore) queryOrders(query string, args ...any) ([]models.Order, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var createdAt int64
		if err := rows.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail,
			&o.CustomerPhone, &o.CustomerAddress, &o.Comment, &o.Total,
			&o.OriginalTotal, &o.HasComment, &o.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.CreatedAt = fromMillis(createdAt)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *OrderStore) itemsForOrder(orderID int64) ([]models.OrderItem, error) {
	rows, err := s.db.Query(`
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
			p.name, p.image, p.subcategory_id,
			COALESCE(sc.name, ''), COALESCE(sc.parent_id, 0), COALESCE(c.name, '')
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		LEFT JOIN subcategories sc ON p.subcategory_id = sc.id
		LEFT JOIN categories c ON sc.parent_id = c.id
		WHERE oi.order_id = ?`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.Price, &item.Name, &item.Image, &item.SubcategoryID,
			&item.SubcategoryName, &item.CategoryID, &item.CategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
