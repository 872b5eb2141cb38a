package repository

import (
	"context"
	"sort"
	"strconv"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersUserIDIndex      = "user_id-index"
)

type orderLineItem struct {
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	Quantity    int    `dynamodbav:"quantity"`
	Size        string `dynamodbav:"size,omitempty"`
	Price       string `dynamodbav:"price"`
}

type orderItem struct {
	ID            string          `dynamodbav:"id"`
	UserID        string          `dynamodbav:"user_id"`
	Items         []orderLineItem `dynamodbav:"items"`
	Subtotal      string          `dynamodbav:"subtotal"`
	Shipping      string          `dynamodbav:"shipping"`
	Discount      string          `dynamodbav:"discount"`
	Total         string          `dynamodbav:"total"`
	Status        string          `dynamodbav:"status"`
	PaymentStatus string          `dynamodbav:"payment_status"`
	CreatedAt     string          `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The index has no sort key, so history queries sort by created_at in memory
// before applying the caller's limit.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, orderLineItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Price:       floatToString(item.Price),
		})
	}
	return orderItem{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         lines,
		Subtotal:      floatToString(o.Subtotal),
		Shipping:      floatToString(o.Shipping),
		Discount:      floatToString(o.Discount),
		Total:         floatToString(o.Total),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		CreatedAt:     formatTime(o.CreatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, line := range it.Items {
		price, _ := strconv.ParseFloat(line.Price, 64)
		items = append(items, entities.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Size:        line.Size,
			Price:       price,
		})
	}

	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	shipping, _ := strconv.ParseFloat(it.Shipping, 64)
	discount, _ := strconv.ParseFloat(it.Discount, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)

	return entities.Order{
		ID:            it.ID,
		UserID:        it.UserID,
		Items:         items,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Discount:      discount,
		Total:         total,
		Status:        entities.OrderStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
