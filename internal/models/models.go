package models

import "time"

// User is a registered shop account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Name      string    `json:"name" db:"name"`
	IsAdmin   bool      `json:"is_admin" db:"is_admin"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Category is a root of the catalog tree. HasComments marks categories whose
// products require an order comment at checkout.
type Category struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	HasComments bool      `json:"has_comments" db:"has_comments"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Subcategory struct {
	ID          int64     `json:"id" db:"id"`
	ParentID    int64     `json:"parent_id" db:"parent_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// CategoryName is joined in for flat subcategory listings.
	CategoryName string `json:"category_name,omitempty" db:"-"`
}

// Product belongs to exactly one subcategory. PriceFrom marks products whose
// price is a minimum ("from X"), e.g. event programs priced per head.
type Product struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Price         float64   `json:"price" db:"price"`
	PriceFrom     bool      `json:"price_from" db:"price_from"`
	SubcategoryID int64     `json:"subcategory_id" db:"subcategory_id"`
	Description   string    `json:"description" db:"description"`
	Image         string    `json:"image" db:"image"`
	IsHit         bool      `json:"is_hit" db:"is_hit"`
	IsNew         bool      `json:"is_new" db:"is_new"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Order statuses form a closed set. Transitions are deliberately
// unconstrained beyond membership: the back office may move an order to any
// status at any time.
const (
	OrderStatusUnderReview     = "under_review"
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusPending         = "pending"
	OrderStatusCompleted       = "completed"
	OrderStatusCancelled       = "cancelled"
)

// PendingGroup are the statuses the admin "pending" filter expands to: every
// non-terminal, non-cancelled order.
var PendingGroup = []string{OrderStatusPending, OrderStatusUnderReview, OrderStatusAwaitingPayment}

// ValidOrderStatus reports whether s is a member of the closed status set.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusUnderReview, OrderStatusAwaitingPayment, OrderStatusPending,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order captures the customer contact block at checkout time, independent of
// any user profile. UserID is nil for guest checkouts and is set to NULL if
// the owning user is later deleted.
type Order struct {
	ID              int64     `json:"id" db:"id"`
	UserID          *int64    `json:"user_id" db:"user_id"`
	CustomerName    string    `json:"customer_name" db:"customer_name"`
	CustomerEmail   string    `json:"customer_email" db:"customer_email"`
	CustomerPhone   string    `json:"customer_phone" db:"customer_phone"`
	CustomerAddress string    `json:"customer_address" db:"customer_address"`
	Comment         string    `json:"comment" db:"comment"`
	Total           float64   `json:"total" db:"total"`
	OriginalTotal   float64   `json:"original_total" db:"original_total"`
	HasComment      bool      `json:"has_comment" db:"has_comment"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	Items []OrderItem `json:"items,omitempty" db:"-"`
}

// OrderItem captures quantity and the unit price at time of purchase. Price
// must never be recomputed from the current product price.
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"`

	// Joined product/catalog context for order listings.
	Name            string `json:"name,omitempty" db:"-"`
	Image           string `json:"image,omitempty" db:"-"`
	SubcategoryID   int64  `json:"subcategory_id,omitempty" db:"-"`
	SubcategoryName string `json:"subcategory_name,omitempty" db:"-"`
	CategoryID      int64  `json:"category_id,omitempty" db:"-"`
	CategoryName    string `json:"category_name,omitempty" db:"-"`
}

// Review ratings are integers in [MinRating, MaxRating].
const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID           int64     `json:"id" db:"id"`
	ProductID    int64     `json:"product_id" db:"product_id"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	Rating       int       `json:"rating" db:"rating"`
	Comment      string    `json:"comment" db:"comment"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ContactMessage is an inquiry from the contact form. Attachment is an
// uploads URL, empty when none was sent.
type ContactMessage struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Message    string    `json:"message" db:"message"`
	Attachment string    `json:"attachment" db:"attachment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
