package postgres

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	err_storage "github.com/avGenie/go-order-admin/internal/app/storage/api/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Postgres struct {
	db *sql.DB
}

func NewPostgresStorage(ctx context.Context, dbStorageConnect string) (*Postgres, error) {
	db, err := sql.Open("pgx", dbStorageConnect)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}

	instance := &Postgres{
		db: db,
	}

	err = instance.Ping(ctx)
	if err != nil {
		return nil, err
	}

	err = migrate(ctx, db)
	if err != nil {
		return nil, err
	}

	return instance, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	err := goose.SetDialect("postgres")
	if err != nil {
		return fmt.Errorf("error while setting goose dialect: %w", err)
	}

	err = goose.UpContext(ctx, db, "migrations")
	if err != nil {
		return fmt.Errorf("error while applying migrations: %w", err)
	}

	return nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) Ping(ctx context.Context) error {
	err := s.db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("error while pinging postgresql: %w", err)
	}

	return nil
}

func (s *Postgres) CreateUser(ctx context.Context, user entity.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, login, password) VALUES ($1, $2, $3)`,
		user.ID.String(), user.Login, user.Password,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return err_storage.ErrLoginExists
		}

		return fmt.Errorf("error while inserting user: %w", err)
	}

	return nil
}

func (s *Postgres) GetUser(ctx context.Context, login string) (entity.User, error) {
	var user entity.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, login, password FROM users WHERE login = $1`, login,
	).Scan(&user.ID, &user.Login, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, err_storage.ErrLoginNotFound
		}

		return entity.User{}, fmt.Errorf("error while getting user: %w", err)
	}

	return user, nil
}

func (s *Postgres) CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	customer.ID = entity.CustomerID(uuid.New().String())

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO customers (id, owner_id, name, email, phone, street, city, state, zip_code, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		customer.ID.String(), customer.OwnerID.String(), customer.Name, customer.Email, customer.Phone,
		customer.Address.Street, customer.Address.City, customer.Address.State, customer.Address.ZipCode, customer.Address.Country,
		customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Customer{}, fmt.Errorf("customer email %s: %w", customer.Email, err_storage.ErrCustomerEmailExists)
		}

		return entity.Customer{}, fmt.Errorf("error while inserting customer: %w", err)
	}

	return customer, nil
}

const selectCustomers = `SELECT id, owner_id, name, email, phone, street, city, state, zip_code, country, created_at FROM customers`

func (s *Postgres) GetCustomers(ctx context.Context, ownerID entity.UserID) (entity.Customers, error) {
	return s.queryCustomers(ctx, selectCustomers+` WHERE owner_id = $1 ORDER BY seq`, ownerID.String())
}

func (s *Postgres) GetCustomersByIDs(ctx context.Context, ownerID entity.UserID, ids []entity.CustomerID) (entity.Customers, error) {
	return s.queryCustomers(ctx, selectCustomers+` WHERE owner_id = $1 AND id = ANY($2) ORDER BY seq`, ownerID.String(), toStrings(ids))
}

func (s *Postgres) queryCustomers(ctx context.Context, query string, args ...any) (entity.Customers, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error while querying customers: %w", err)
	}
	defer rows.Close()

	customers := make(entity.Customers, 0)
	for rows.Next() {
		var customer entity.Customer
		err = rows.Scan(
			&customer.ID, &customer.OwnerID, &customer.Name, &customer.Email, &customer.Phone,
			&customer.Address.Street, &customer.Address.City, &customer.Address.State, &customer.Address.ZipCode, &customer.Address.Country,
			&customer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error while scanning customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating customers: %w", err)
	}

	return customers, nil
}

func (s *Postgres) CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error) {
	product.ID = entity.ProductID(uuid.New().String())
	if product.Images == nil {
		product.Images = []string{}
	}

	images, err := json.Marshal(product.Images)
	if err != nil {
		return entity.Product{}, fmt.Errorf("error while marshalling product images: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO products (id, owner_id, name, category, description, price, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		product.ID.String(), product.OwnerID.String(), product.Name, product.Category, product.Description,
		product.Price, images, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return entity.Product{}, fmt.Errorf("error while inserting product: %w", err)
	}

	return product, nil
}

func productsQuery(ownerID entity.UserID, filter entity.ProductFilter) (string, []any) {
	where := newWhereBuilder()
	where.add("owner_id = %s", ownerID.String())
	if len(filter.Category) != 0 {
		where.add("category = %s", filter.Category)
	}
	if len(filter.IDs) != 0 {
		where.add("id = ANY(%s)", toStrings(filter.IDs))
	}

	query := `SELECT id, owner_id, name, category, description, price, images, created_at, updated_at FROM products` +
		where.String() + ` ORDER BY seq`

	return query, where.args
}

func (s *Postgres) GetProducts(ctx context.Context, ownerID entity.UserID, filter entity.ProductFilter) (entity.Products, error) {
	query, args := productsQuery(ownerID, filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error while querying products: %w", err)
	}
	defer rows.Close()

	products := make(entity.Products, 0)
	for rows.Next() {
		var (
			product entity.Product
			images  []byte
		)
		err = rows.Scan(
			&product.ID, &product.OwnerID, &product.Name, &product.Category, &product.Description,
			&product.Price, &images, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error while scanning product: %w", err)
		}

		err = json.Unmarshal(images, &product.Images)
		if err != nil {
			return nil, fmt.Errorf("error while unmarshalling product images: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating products: %w", err)
	}

	return products, nil
}

type lineItemRow struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
}

func (s *Postgres) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	order.ID = entity.OrderID(uuid.New().String())

	rows := make([]lineItemRow, 0, len(order.Items))
	for _, item := range order.Items {
		rows = append(rows, lineItemRow{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	items, err := json.Marshal(rows)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while marshalling order items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO orders (id, owner_id, customer_id, customer_name, items, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.ID.String(), order.OwnerID.String(), order.CustomerID.String(), order.CustomerName,
		items, order.TotalAmount, string(order.Status), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while inserting order: %w", err)
	}

	return order, nil
}

const selectOrders = `SELECT id, owner_id, customer_id, customer_name, items, total_amount, status, created_at, updated_at FROM orders`

func (s *Postgres) GetOrder(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID) (entity.Order, error) {
	row := s.db.QueryRowContext(ctx, selectOrders+` WHERE id = $1 AND owner_id = $2`, orderID.String(), ownerID.String())

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while getting order: %w", err)
	}

	return order, nil
}

// ordersQuery matches product ids against the line items stored in the items jsonb array.
func ordersQuery(ownerID entity.UserID, filter entity.OrderFilter) (string, []any) {
	where := newWhereBuilder()
	where.add("owner_id = %s", ownerID.String())
	if len(filter.Status) != 0 {
		where.add("status = %s", string(filter.Status))
	}
	if len(filter.CustomerID) != 0 {
		where.add("customer_id = %s", filter.CustomerID.String())
	}
	if len(filter.ProductIDs) != 0 {
		where.add("EXISTS (SELECT 1 FROM jsonb_array_elements(items) AS item WHERE item->>'productId' = ANY(%s))", toStrings(filter.ProductIDs))
	}

	query := selectOrders + where.String() + ` ORDER BY seq`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	return query, where.args
}

func (s *Postgres) GetOrders(ctx context.Context, ownerID entity.UserID, filter entity.OrderFilter) (entity.Orders, error) {
	query, args := ordersQuery(ownerID, filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error while querying orders: %w", err)
	}
	defer rows.Close()

	orders := make(entity.Orders, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("error while scanning order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating orders: %w", err)
	}

	return orders, nil
}

func updateOrderStatusQuery(ownerID entity.UserID, orderID entity.OrderID, update entity.OrderStatusUpdate) (string, []any) {
	args := []any{string(update.Status), update.UpdatedAt, orderID.String(), ownerID.String()}
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 AND owner_id = $4`
	if len(update.Expected) != 0 {
		args = append(args, string(update.Expected))
		query += ` AND status = $5`
	}

	query += ` RETURNING id, owner_id, customer_id, customer_name, items, total_amount, status, created_at, updated_at`

	return query, args
}

func (s *Postgres) UpdateOrderStatus(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID, update entity.OrderStatusUpdate) (entity.Order, error) {
	query, args := updateOrderStatusQuery(ownerID, orderID, update)

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, args...))
	if err == nil {
		return order, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return entity.Order{}, fmt.Errorf("error while updating order status: %w", err)
	}

	if len(update.Expected) == 0 {
		return entity.Order{}, err_storage.ErrOrderNotFound
	}

	var exists bool
	err = s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1 AND owner_id = $2)`,
		orderID.String(), ownerID.String(),
	).Scan(&exists)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while checking order existence: %w", err)
	}

	if exists {
		return entity.Order{}, err_storage.ErrOrderStatusChanged
	}

	return entity.Order{}, err_storage.ErrOrderNotFound
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (entity.Order, error) {
	var (
		order entity.Order
		items []byte
	)
	err := row.Scan(
		&order.ID, &order.OwnerID, &order.CustomerID, &order.CustomerName,
		&items, &order.TotalAmount, &order.Status, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return entity.Order{}, err
	}

	var rows []lineItemRow
	err = json.Unmarshal(items, &rows)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while unmarshalling order items: %w", err)
	}

	order.Items = make([]entity.LineItem, 0, len(rows))
	for _, row := range rows {
		order.Items = append(order.Items, entity.LineItem{
			ProductID:   entity.ProductID(row.ProductID),
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			Amount:      row.Amount,
		})
	}

	return order, nil
}

// whereBuilder numbers placeholders in the order conditions are added.
type whereBuilder struct {
	conditions []string
	args       []any
}

func newWhereBuilder() *whereBuilder {
	return &whereBuilder{}
}

func (w *whereBuilder) add(condition string, arg any) {
	w.args = append(w.args, arg)
	w.conditions = append(w.conditions, fmt.Sprintf(condition, fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) String() string {
	if len(w.conditions) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(w.conditions, " AND ")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func toStrings[T ~string](values []T) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		result = append(result, string(value))
	}

	return result
}
