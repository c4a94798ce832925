package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	err_storage "github.com/avGenie/go-order-admin/internal/app/storage/api/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	usersCollection     = "users"
	customersCollection = "customers"
	productsCollection  = "products"
	ordersCollection    = "orders"

	connectTimeout = 10 * time.Second
)

type Mongo struct {
	client *mongo.Client

	users     *mongo.Collection
	customers *mongo.Collection
	products  *mongo.Collection
	orders    *mongo.Collection
}

func NewMongoStorage(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error while mongodb connect: %w", err)
	}

	instance := newMongo(client, client.Database(database))

	err = instance.Ping(ctx)
	if err != nil {
		return nil, err
	}

	err = instance.createIndexes(ctx)
	if err != nil {
		return nil, err
	}

	zap.L().Info("mongodb storage is ready", zap.String("database", database))

	return instance, nil
}

func newMongo(client *mongo.Client, db *mongo.Database) *Mongo {
	return &Mongo{
		client:    client,
		users:     db.Collection(usersCollection),
		customers: db.Collection(customersCollection),
		products:  db.Collection(productsCollection),
		orders:    db.Collection(ordersCollection),
	}
}

func (s *Mongo) Close() error {
	return s.client.Disconnect(context.Background())
}

func (s *Mongo) Ping(ctx context.Context) error {
	err := s.client.Ping(ctx, nil)
	if err != nil {
		return fmt.Errorf("error while pinging mongodb: %w", err)
	}

	return nil
}

func (s *Mongo) createIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error while creating users index: %w", err)
	}

	_, err = s.customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdBy", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error while creating customers index: %w", err)
	}

	_, err = s.products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "category", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("error while creating products index: %w", err)
	}

	_, err = s.orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "customer", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("error while creating orders indexes: %w", err)
	}

	return nil
}

func (s *Mongo) CreateUser(ctx context.Context, user entity.User) error {
	_, err := s.users.InsertOne(ctx, userDocument{
		ID:       user.ID.String(),
		Login:    user.Login,
		Password: user.Password,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err_storage.ErrLoginExists
		}

		return fmt.Errorf("error while inserting user: %w", err)
	}

	return nil
}

func (s *Mongo) GetUser(ctx context.Context, login string) (entity.User, error) {
	var doc userDocument
	err := s.users.FindOne(ctx, bson.M{"login": login}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.User{}, err_storage.ErrLoginNotFound
		}

		return entity.User{}, fmt.Errorf("error while getting user: %w", err)
	}

	return entity.User{
		ID:       entity.UserID(doc.ID),
		Login:    doc.Login,
		Password: doc.Password,
	}, nil
}

func (s *Mongo) CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	doc := newCustomerDocument(customer)
	doc.ID = primitive.NewObjectID()

	_, err := s.customers.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.Customer{}, fmt.Errorf("customer email %s: %w", customer.Email, err_storage.ErrCustomerEmailExists)
		}

		return entity.Customer{}, fmt.Errorf("error while inserting customer: %w", err)
	}

	return doc.toEntity(), nil
}

func (s *Mongo) GetCustomers(ctx context.Context, ownerID entity.UserID) (entity.Customers, error) {
	return s.findCustomers(ctx, bson.M{"createdBy": ownerID.String()})
}

func (s *Mongo) GetCustomersByIDs(ctx context.Context, ownerID entity.UserID, ids []entity.CustomerID) (entity.Customers, error) {
	objectIDs := toObjectIDs(ids)
	if len(objectIDs) == 0 {
		return entity.Customers{}, nil
	}

	return s.findCustomers(ctx, bson.M{
		"createdBy": ownerID.String(),
		"_id":       bson.M{"$in": objectIDs},
	})
}

func (s *Mongo) findCustomers(ctx context.Context, filter bson.M) (entity.Customers, error) {
	cursor, err := s.customers.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error while finding customers: %w", err)
	}

	var docs []customerDocument
	err = cursor.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("error while decoding customers: %w", err)
	}

	customers := make(entity.Customers, 0, len(docs))
	for _, doc := range docs {
		customers = append(customers, doc.toEntity())
	}

	return customers, nil
}

func (s *Mongo) CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error) {
	doc, err := newProductDocument(product)
	if err != nil {
		return entity.Product{}, err
	}
	doc.ID = primitive.NewObjectID()

	_, err = s.products.InsertOne(ctx, doc)
	if err != nil {
		return entity.Product{}, fmt.Errorf("error while inserting product: %w", err)
	}

	return doc.toEntity()
}

func (s *Mongo) GetProducts(ctx context.Context, ownerID entity.UserID, filter entity.ProductFilter) (entity.Products, error) {
	query := bson.M{"createdBy": ownerID.String()}
	if len(filter.Category) != 0 {
		query["category"] = filter.Category
	}
	if len(filter.IDs) != 0 {
		objectIDs := toObjectIDs(filter.IDs)
		if len(objectIDs) == 0 {
			return entity.Products{}, nil
		}
		query["_id"] = bson.M{"$in": objectIDs}
	}

	cursor, err := s.products.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error while finding products: %w", err)
	}

	var docs []productDocument
	err = cursor.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("error while decoding products: %w", err)
	}

	products := make(entity.Products, 0, len(docs))
	for _, doc := range docs {
		product, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (s *Mongo) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	doc, err := newOrderDocument(order)
	if err != nil {
		return entity.Order{}, err
	}
	doc.ID = primitive.NewObjectID()

	_, err = s.orders.InsertOne(ctx, doc)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while inserting order: %w", err)
	}

	return doc.toEntity()
}

func (s *Mongo) GetOrder(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID) (entity.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(orderID.String())
	if err != nil {
		return entity.Order{}, err_storage.ErrOrderNotFound
	}

	var doc orderDocument
	err = s.orders.FindOne(ctx, bson.M{"_id": objectID, "createdBy": ownerID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while getting order: %w", err)
	}

	return doc.toEntity()
}

func (s *Mongo) GetOrders(ctx context.Context, ownerID entity.UserID, filter entity.OrderFilter) (entity.Orders, error) {
	query := bson.M{"createdBy": ownerID.String()}
	if len(filter.Status) != 0 {
		query["status"] = string(filter.Status)
	}
	if len(filter.CustomerID) != 0 {
		query["customer"] = filter.CustomerID.String()
	}
	if len(filter.ProductIDs) != 0 {
		ids := make([]string, 0, len(filter.ProductIDs))
		for _, id := range filter.ProductIDs {
			ids = append(ids, id.String())
		}
		query["products.product"] = bson.M{"$in": ids}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := s.orders.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error while finding orders: %w", err)
	}

	var docs []orderDocument
	err = cursor.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("error while decoding orders: %w", err)
	}

	orders := make(entity.Orders, 0, len(docs))
	for _, doc := range docs {
		order, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateOrderStatus matches the expected status in the same filter as the
// owner, so a conditional update is a single findAndModify.
func (s *Mongo) UpdateOrderStatus(ctx context.Context, ownerID entity.UserID, orderID entity.OrderID, update entity.OrderStatusUpdate) (entity.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(orderID.String())
	if err != nil {
		return entity.Order{}, err_storage.ErrOrderNotFound
	}

	filter := bson.M{"_id": objectID, "createdBy": ownerID.String()}
	if len(update.Expected) != 0 {
		filter["status"] = string(update.Expected)
	}

	var doc orderDocument
	err = s.orders.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": bson.M{"status": string(update.Status), "updatedAt": update.UpdatedAt}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return doc.toEntity()
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return entity.Order{}, fmt.Errorf("error while updating order status: %w", err)
	}

	if len(update.Expected) == 0 {
		return entity.Order{}, err_storage.ErrOrderNotFound
	}

	count, err := s.orders.CountDocuments(ctx, bson.M{"_id": objectID, "createdBy": ownerID.String()})
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while checking order existence: %w", err)
	}

	if count != 0 {
		return entity.Order{}, err_storage.ErrOrderStatusChanged
	}

	return entity.Order{}, err_storage.ErrOrderNotFound
}

func toObjectIDs[T ~string](ids []T) []primitive.ObjectID {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(string(id))
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}

	return objectIDs
}
