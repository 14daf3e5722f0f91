package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ShippingAddress struct {
	FullName string
	Phone    string
	Address  string
	City     string
	Region   string
}

type Order struct {
	ID               uuid.UUID
	OrderNumber      string
	UserID           uuid.UUID
	Status           string
	PaymentStatus    string
	PaymentReference sql.NullString
	Subtotal         decimal.Decimal
	Shipping         decimal.Decimal
	Tax              decimal.Decimal
	GrandTotal       decimal.Decimal
	Address          ShippingAddress
	PlacedAt         time.Time
}

type OrderItem struct {
	OrderID      uuid.UUID
	ProductID    uuid.UUID
	NameSnapshot string
	UnitPrice    decimal.Decimal
	Quantity     int
}

type CustomOrder struct {
	ID               uuid.UUID
	OrderNumber      string
	UserID           uuid.UUID
	Status           string
	PaymentStatus    string
	PaymentReference sql.NullString

	FullName string
	Email    string
	Phone    string

	GarmentType      string
	StyleDescription string
	Occasion         string

	Bust     decimal.Decimal
	Waist    decimal.Decimal
	Hips     decimal.Decimal
	Shoulder decimal.NullDecimal
	Sleeves  decimal.NullDecimal
	Length   decimal.Decimal

	FabricType        string
	FabricColor       string
	DesignDetails     string
	ReferenceImageURL sql.NullString
	Urgency           string
	SpecialRequests   string

	Total      decimal.Decimal
	Deposit    decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal

	Address  ShippingAddress
	PlacedAt time.Time
}

type DashboardStats struct {
	TotalOrders       int64
	TotalCustomOrders int64
	PendingOrders     int64
	TotalProducts     int64
	TotalCustomers    int64
	TotalRevenue      decimal.Decimal
}

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx DBTX) Repository

	CreateOrder(ctx context.Context, o Order) (Order, error)
	CreateOrderItem(ctx context.Context, item OrderItem) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (Order, error)
	GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	ListOrdersAdmin(ctx context.Context, status string, limit, offset int) ([]Order, int64, error)
	ListRecentOrders(ctx context.Context, limit int) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (Order, error)
	SetOrderPaymentReference(ctx context.Context, id uuid.UUID, reference string) error
	MarkOrderPaidByReference(ctx context.Context, reference string) (Order, error)

	CreateCustomOrder(ctx context.Context, o CustomOrder) (CustomOrder, error)
	GetCustomOrderByID(ctx context.Context, id uuid.UUID) (CustomOrder, error)
	ListCustomOrdersByUser(ctx context.Context, userID uuid.UUID) ([]CustomOrder, error)
	ListCustomOrdersAdmin(ctx context.Context, limit, offset int) ([]CustomOrder, int64, error)
	UpdateCustomOrderStatus(ctx context.Context, id uuid.UUID, status string) (CustomOrder, error)
	SetCustomOrderPaymentReference(ctx context.Context, id uuid.UUID, reference string) error
	MarkCustomOrderPaidByReference(ctx context.Context, reference string) (CustomOrder, error)

	GetUserContact(ctx context.Context, userID uuid.UUID) (name, email string, err error)
	GetDashboardStats(ctx context.Context) (DashboardStats, error)
}

type repository struct {
	db DBTX
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx DBTX) Repository {
	return &repository{db: tx}
}

const orderColumns = `id, order_number, user_id, status, payment_status, payment_reference,
	subtotal, shipping, tax, grand_total,
	shipping_full_name, shipping_phone, shipping_address, shipping_city, shipping_region, placed_at`

func (r *repository) CreateOrder(ctx context.Context, o Order) (Order, error) {
	const query = `
		INSERT INTO orders (order_number, user_id, subtotal, shipping, tax, grand_total,
			shipping_full_name, shipping_phone, shipping_address, shipping_city, shipping_region)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + orderColumns

	return scanOrder(r.db.QueryRowContext(ctx, query,
		o.OrderNumber, o.UserID,
		o.Subtotal.String(), o.Shipping.String(), o.Tax.String(), o.GrandTotal.String(),
		o.Address.FullName, o.Address.Phone, o.Address.Address, o.Address.City, o.Address.Region))
}

func (r *repository) CreateOrderItem(ctx context.Context, item OrderItem) error {
	const query = `
		INSERT INTO order_items (order_id, product_id, name_snapshot, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		item.OrderID, item.ProductID, item.NameSnapshot, item.UnitPrice.String(), item.Quantity)
	return err
}

func (r *repository) GetOrderByID(ctx context.Context, id uuid.UUID) (Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return scanOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *repository) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	const query = `
		SELECT order_id, product_id, name_snapshot, unit_price, quantity
		FROM order_items WHERE order_id = $1`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderItem
	for rows.Next() {
		var item OrderItem
		var price string
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.NameSnapshot, &price, &item.Quantity); err != nil {
			return nil, err
		}
		item.UnitPrice, _ = decimal.NewFromString(price)
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *repository) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY placed_at DESC`
	return r.queryOrders(ctx, query, userID)
}

func (r *repository) ListOrdersAdmin(ctx context.Context, status string, limit, offset int) ([]Order, int64, error) {
	const query = `
		SELECT ` + orderColumns + `, COUNT(*) OVER() AS total_count
		FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY placed_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Order
	var total int64
	for rows.Next() {
		var o Order
		var sub, ship, tax, grand string
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.PaymentStatus, &o.PaymentReference,
			&sub, &ship, &tax, &grand,
			&o.Address.FullName, &o.Address.Phone, &o.Address.Address, &o.Address.City, &o.Address.Region,
			&o.PlacedAt, &total); err != nil {
			return nil, 0, err
		}
		assignOrderMoney(&o, sub, ship, tax, grand)
		out = append(out, o)
	}
	return out, total, rows.Err()
}

func (r *repository) ListRecentOrders(ctx context.Context, limit int) ([]Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY placed_at DESC LIMIT $1`
	return r.queryOrders(ctx, query, limit)
}

func (r *repository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (Order, error) {
	const query = `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + orderColumns

	return scanOrder(r.db.QueryRowContext(ctx, query, id, status))
}

func (r *repository) SetOrderPaymentReference(ctx context.Context, id uuid.UUID, reference string) error {
	const query = `UPDATE orders SET payment_reference = $2, updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, reference)
	return err
}

func (r *repository) MarkOrderPaidByReference(ctx context.Context, reference string) (Order, error) {
	const query = `
		UPDATE orders SET payment_status = 'PAID', updated_at = now()
		WHERE payment_reference = $1
		RETURNING ` + orderColumns

	return scanOrder(r.db.QueryRowContext(ctx, query, reference))
}

const customOrderColumns = `id, order_number, user_id, status, payment_status, payment_reference,
	full_name, email, phone, garment_type, style_description, occasion,
	bust, waist, hips, shoulder, sleeves, length,
	fabric_type, fabric_color, design_details, reference_image_url, urgency, special_requests,
	total, deposit, shipping, tax, grand_total,
	shipping_full_name, shipping_phone, shipping_address, shipping_city, shipping_region, placed_at`

func (r *repository) CreateCustomOrder(ctx context.Context, o CustomOrder) (CustomOrder, error) {
	const query = `
		INSERT INTO custom_orders (order_number, user_id,
			full_name, email, phone, garment_type, style_description, occasion,
			bust, waist, hips, shoulder, sleeves, length,
			fabric_type, fabric_color, design_details, reference_image_url, urgency, special_requests,
			total, deposit, shipping, tax, grand_total,
			shipping_full_name, shipping_phone, shipping_address, shipping_city, shipping_region)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
		RETURNING ` + customOrderColumns

	return scanCustomOrder(r.db.QueryRowContext(ctx, query,
		o.OrderNumber, o.UserID,
		o.FullName, o.Email, o.Phone, o.GarmentType, o.StyleDescription, o.Occasion,
		o.Bust.String(), o.Waist.String(), o.Hips.String(), o.Shoulder, o.Sleeves, o.Length.String(),
		o.FabricType, o.FabricColor, o.DesignDetails, o.ReferenceImageURL, o.Urgency, o.SpecialRequests,
		o.Total.String(), o.Deposit.String(), o.Shipping.String(), o.Tax.String(), o.GrandTotal.String(),
		o.Address.FullName, o.Address.Phone, o.Address.Address, o.Address.City, o.Address.Region))
}

func (r *repository) GetCustomOrderByID(ctx context.Context, id uuid.UUID) (CustomOrder, error) {
	const query = `SELECT ` + customOrderColumns + ` FROM custom_orders WHERE id = $1`
	return scanCustomOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *repository) ListCustomOrdersByUser(ctx context.Context, userID uuid.UUID) ([]CustomOrder, error) {
	const query = `SELECT ` + customOrderColumns + ` FROM custom_orders WHERE user_id = $1 ORDER BY placed_at DESC`
	return r.queryCustomOrders(ctx, query, userID)
}

func (r *repository) ListCustomOrdersAdmin(ctx context.Context, limit, offset int) ([]CustomOrder, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM custom_orders`
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT ` + customOrderColumns + ` FROM custom_orders ORDER BY placed_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.queryCustomOrders(ctx, query, limit, offset)
	return rows, total, err
}

func (r *repository) UpdateCustomOrderStatus(ctx context.Context, id uuid.UUID, status string) (CustomOrder, error) {
	const query = `
		UPDATE custom_orders SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + customOrderColumns

	return scanCustomOrder(r.db.QueryRowContext(ctx, query, id, status))
}

func (r *repository) SetCustomOrderPaymentReference(ctx context.Context, id uuid.UUID, reference string) error {
	const query = `UPDATE custom_orders SET payment_reference = $2, updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, reference)
	return err
}

func (r *repository) MarkCustomOrderPaidByReference(ctx context.Context, reference string) (CustomOrder, error) {
	const query = `
		UPDATE custom_orders SET payment_status = 'PAID', updated_at = now()
		WHERE payment_reference = $1
		RETURNING ` + customOrderColumns

	return scanCustomOrder(r.db.QueryRowContext(ctx, query, reference))
}

func (r *repository) GetUserContact(ctx context.Context, userID uuid.UUID) (string, string, error) {
	const query = `SELECT name, email FROM users WHERE id = $1`
	var name, email string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&name, &email)
	return name, email, err
}

func (r *repository) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM custom_orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'PENDING') +
			(SELECT COUNT(*) FROM custom_orders WHERE status = 'PENDING'),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM users WHERE role = 'user'),
			COALESCE((SELECT SUM(grand_total) FROM orders WHERE payment_status = 'PAID'), 0) +
			COALESCE((SELECT SUM(grand_total) FROM custom_orders WHERE payment_status = 'PAID'), 0)`

	var stats DashboardStats
	var revenue string
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalOrders, &stats.TotalCustomOrders, &stats.PendingOrders,
		&stats.TotalProducts, &stats.TotalCustomers, &revenue)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.TotalRevenue, _ = decimal.NewFromString(revenue)
	return stats, nil
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var sub, ship, tax, grand string
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.PaymentStatus, &o.PaymentReference,
			&sub, &ship, &tax, &grand,
			&o.Address.FullName, &o.Address.Phone, &o.Address.Address, &o.Address.City, &o.Address.Region,
			&o.PlacedAt); err != nil {
			return nil, err
		}
		assignOrderMoney(&o, sub, ship, tax, grand)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *repository) queryCustomOrders(ctx context.Context, query string, args ...any) ([]CustomOrder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CustomOrder
	for rows.Next() {
		o, err := scanCustomOrderFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row *sql.Row) (Order, error) {
	var o Order
	var sub, ship, tax, grand string
	err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.PaymentStatus, &o.PaymentReference,
		&sub, &ship, &tax, &grand,
		&o.Address.FullName, &o.Address.Phone, &o.Address.Address, &o.Address.City, &o.Address.Region,
		&o.PlacedAt)
	if err != nil {
		return Order{}, err
	}
	assignOrderMoney(&o, sub, ship, tax, grand)
	return o, nil
}

func assignOrderMoney(o *Order, sub, ship, tax, grand string) {
	o.Subtotal, _ = decimal.NewFromString(sub)
	o.Shipping, _ = decimal.NewFromString(ship)
	o.Tax, _ = decimal.NewFromString(tax)
	o.GrandTotal, _ = decimal.NewFromString(grand)
}

func scanCustomOrder(row *sql.Row) (CustomOrder, error) {
	return scanCustomOrderFrom(row)
}

func scanCustomOrderFrom(row rowScanner) (CustomOrder, error) {
	var o CustomOrder
	var bust, waist, hips, length string
	var shoulder, sleeves sql.NullString
	var total, deposit, ship, tax, grand string

	err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.Status, &o.PaymentStatus, &o.PaymentReference,
		&o.FullName, &o.Email, &o.Phone, &o.GarmentType, &o.StyleDescription, &o.Occasion,
		&bust, &waist, &hips, &shoulder, &sleeves, &length,
		&o.FabricType, &o.FabricColor, &o.DesignDetails, &o.ReferenceImageURL, &o.Urgency, &o.SpecialRequests,
		&total, &deposit, &ship, &tax, &grand,
		&o.Address.FullName, &o.Address.Phone, &o.Address.Address, &o.Address.City, &o.Address.Region,
		&o.PlacedAt)
	if err != nil {
		return CustomOrder{}, err
	}

	o.Bust, _ = decimal.NewFromString(bust)
	o.Waist, _ = decimal.NewFromString(waist)
	o.Hips, _ = decimal.NewFromString(hips)
	o.Length, _ = decimal.NewFromString(length)
	if shoulder.Valid {
		d, _ := decimal.NewFromString(shoulder.String)
		o.Shoulder = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	if sleeves.Valid {
		d, _ := decimal.NewFromString(sleeves.String)
		o.Sleeves = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	o.Total, _ = decimal.NewFromString(total)
	o.Deposit, _ = decimal.NewFromString(deposit)
	o.Shipping, _ = decimal.NewFromString(ship)
	o.Tax, _ = decimal.NewFromString(tax)
	o.GrandTotal, _ = decimal.NewFromString(grand)
	return o, nil
}
