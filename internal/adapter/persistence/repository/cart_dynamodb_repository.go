package repository

import (
	"context"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "carts"

type cartLineItem struct {
	ProductID string `dynamodbav:"product_id"`
	Quantity  int    `dynamodbav:"quantity"`
	Size      string `dynamodbav:"size,omitempty"`
}

type cartItem struct {
	UserID       string         `dynamodbav:"user_id"`
	Items        []cartLineItem `dynamodbav:"items"`
	DiscountCode string         `dynamodbav:"discount_code,omitempty"`
	CreatedAt    string         `dynamodbav:"created_at"`
	UpdatedAt    string         `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists the per-user cart document in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//
// The cart travels as one document: Save replaces the whole item, so the
// line slice and the applied discount code can never drift apart. Mutation
// serialization is the use case's job, not the repository's.

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Get(ctx context.Context, userID string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func (r *CartDynamoRepository) Save(ctx context.Context, cart entities.Cart) (entities.Cart, error) {
	av, err := attributevalue.MarshalMap(toCartItem(cart))
	if err != nil {
		return entities.Cart{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (r *CartDynamoRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	return err
}

func toCartItem(c entities.Cart) cartItem {
	lines := make([]cartLineItem, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, cartLineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}
	return cartItem{
		UserID:       c.UserID,
		Items:        lines,
		DiscountCode: c.DiscountCode,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromCartItem(it cartItem) entities.Cart {
	items := make([]entities.CartItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.CartItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Size:      line.Size,
		})
	}
	return entities.Cart{
		UserID:       it.UserID,
		Items:        items,
		DiscountCode: it.DiscountCode,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
