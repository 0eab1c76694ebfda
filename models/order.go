package models

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus type for order statuses. Statuses carry no transition table;
// the admin may move an order from any status to any other.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

// PaymentStatus type for payment statuses
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order represents orders table
type Order struct {
	OrderID       uint            `gorm:"primaryKey;column:order_id" json:"order_id"`
	OrderNumber   string          `gorm:"type:varchar(20);not null;unique" json:"order_number"`
	UserID        *uint           `gorm:"index" json:"user_id,omitempty"`
	GuestEmail    string          `gorm:"type:varchar(254)" json:"guest_email"`
	GuestName     string          `gorm:"type:varchar(200)" json:"guest_name"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	Tax           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"tax"`
	ShippingCost  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"shipping_cost"`
	Discount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	CouponID      *uint           `json:"coupon_id,omitempty"`

	ShippingAddress string `gorm:"type:varchar(255)" json:"shipping_address"`
	ShippingCity    string `gorm:"type:varchar(100)" json:"shipping_city"`
	ShippingState   string `gorm:"type:varchar(100)" json:"shipping_state"`
	ShippingZip     string `gorm:"type:varchar(20)" json:"shipping_zip"`
	ShippingCountry string `gorm:"type:varchar(100)" json:"shipping_country"`
	BillingAddress  string `gorm:"type:varchar(255)" json:"billing_address"`
	BillingCity     string `gorm:"type:varchar(100)" json:"billing_city"`
	BillingState    string `gorm:"type:varchar(100)" json:"billing_state"`
	BillingZip      string `gorm:"type:varchar(20)" json:"billing_zip"`
	BillingCountry  string `gorm:"type:varchar(100)" json:"billing_country"`

	PaymentMethod *string   `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	TransactionID *string   `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	Notes         *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	User   *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Coupon *Coupon     `gorm:"foreignKey:CouponID;constraint:OnDelete:SET NULL" json:"coupon,omitempty"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// NewOrderNumber derives a human-shareable order identifier from a random
// UUID: "ORD-" plus 8 uppercase hex characters. Collisions are negligible
// but not impossible; the unique index on order_number is the backstop and
// callers creating orders retry on conflict.
func NewOrderNumber() string {
	id := uuid.New()
	return "ORD-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}

// BeforeCreate assigns an order number when none was supplied.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber()
	}
	return nil
}

// Customer identifies who placed an order: a registered user or a guest.
type Customer interface {
	Name() string
	Email() string
}

type registeredCustomer struct{ user User }

func (c registeredCustomer) Name() string  { return c.user.FullName() }
func (c registeredCustomer) Email() string { return c.user.Email }

type guestCustomer struct{ name, email string }

func (c guestCustomer) Name() string  { return c.name }
func (c guestCustomer) Email() string { return c.email }

// Customer resolves the order's customer identity: the linked user when
// present, otherwise the guest contact fields. The User relation must be
// preloaded for registered orders.
func (o *Order) Customer() Customer {
	if o.UserID != nil && o.User != nil {
		return registeredCustomer{user: *o.User}
	}
	return guestCustomer{name: o.GuestName, email: o.GuestEmail}
}

// OrderItem represents order_items table
type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey;column:order_item_id" json:"order_item_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   *uint           `json:"product_id,omitempty"`
	ProductName string          `gorm:"type:varchar(200);not null" json:"product_name"`
	Quantity    int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt   time.Time       `json:"created_at"`

	// Relationships
	Order   Order    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}

// Subtotal is the snapshot price times quantity. Price is captured at
// checkout and never updated, so this stays stable against catalog edits.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
