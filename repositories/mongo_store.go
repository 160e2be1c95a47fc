package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trendkart/models"
)

// MongoStore backs the Store contract with MongoDB collections. Order
// transitions go through the same models.Order methods as the memory
// store, so the lifecycle invariants hold on both backends.
type MongoStore struct {
	products *mongo.Collection
	users    *mongo.Collection
	orders   *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		products: db.Collection("products"),
		users:    db.Collection("users"),
		orders:   db.Collection("orders"),
	}
}

func (s *MongoStore) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, int, error) {
	query := productQuery(f)

	total, err := s.products.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(f.Page, f.Limit)
	opts := options.Find().
		SetSort(productSort(f.Sort)).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.products.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, int(total), nil
}

func (s *MongoStore) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	err := s.products.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) CreateProduct(ctx context.Context, p *models.Product) error {
	_, err := s.products.InsertOne(ctx, p)
	return err
}

func (s *MongoStore) UpdateProduct(ctx context.Context, p *models.Product) error {
	res, err := s.products.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *MongoStore) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, u *models.User) error {
	u.Email = strings.ToLower(u.Email)

	count, err := s.users.CountDocuments(ctx, bson.M{"email": u.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	_, err = s.users.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return err
}

func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) AllUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) UpdateUserRole(ctx context.Context, id, role string) error {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *MongoStore) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_login": at}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *MongoStore) DeleteUser(ctx context.Context, id string) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *MongoStore) PlaceOrder(ctx context.Context, o *models.Order) error {
	// Conditional decrements so a concurrent checkout cannot oversell.
	// A failed line item rolls back the decrements already applied before
	// anything is inserted.
	decremented := []models.OrderItem{}
	for _, item := range o.Items {
		res, err := s.products.UpdateOne(ctx,
			bson.M{"_id": item.ProductID, "stock": bson.M{"$gte": item.Qty}},
			bson.M{"$inc": bson.M{"stock": -item.Qty}},
		)
		if err == nil && res.MatchedCount == 0 {
			err = s.stockError(ctx, item)
		}
		if err != nil {
			s.restock(ctx, decremented)
			return err
		}
		decremented = append(decremented, item)
	}

	if _, err := s.orders.InsertOne(ctx, o); err != nil {
		s.restock(ctx, decremented)
		return err
	}
	return nil
}

func (s *MongoStore) stockError(ctx context.Context, item models.OrderItem) error {
	p, err := s.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
	}
	return fmt.Errorf("%w for %q", ErrInsufficientStock, p.Title)
}

func (s *MongoStore) restock(ctx context.Context, items []models.OrderItem) {
	for _, item := range items {
		s.products.UpdateOne(ctx,
			bson.M{"_id": item.ProductID},
			bson.M{"$inc": bson.M{"stock": item.Qty}},
		)
	}
}

func (s *MongoStore) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := s.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *MongoStore) GetOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.orders.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoStore) AllOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoStore) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	o, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.SetStatus(status); err != nil {
		return nil, err
	}
	if _, err := s.orders.ReplaceOne(ctx, bson.M{"_id": id}, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *MongoStore) MarkOrderPaid(ctx context.Context, id string, result models.PaymentResult) (*models.Order, bool, error) {
	o, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !o.MarkPaid(result, time.Now()) {
		return o, false, nil
	}

	// Guard against a concurrent webhook delivery paying the same order.
	res, err := s.orders.ReplaceOne(ctx, bson.M{"_id": id, "is_paid": false}, o)
	if err != nil {
		return nil, false, err
	}
	if res.MatchedCount == 0 {
		current, err := s.GetOrderByID(ctx, id)
		return current, false, err
	}
	return o, true, nil
}

func (s *MongoStore) RefundOrder(ctx context.Context, id string, amountINR int, reason string) (*models.Order, error) {
	o, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.ApplyRefund(amountINR, reason, time.Now()); err != nil {
		return nil, err
	}
	if _, err := s.orders.ReplaceOne(ctx, bson.M{"_id": id}, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *MongoStore) DeleteOrder(ctx context.Context, id string) error {
	res, err := s.orders.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}
