package repository

import (
	"context"
	"strconv"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type sizeStockItem struct {
	Size     string `dynamodbav:"size"`
	Quantity int    `dynamodbav:"quantity"`
}

type productItem struct {
	ID          string          `dynamodbav:"id"`
	Name        string          `dynamodbav:"name"`
	Description string          `dynamodbav:"description,omitempty"`
	Price       string          `dynamodbav:"price"`
	Category    string          `dynamodbav:"category"`
	ImageURL    string          `dynamodbav:"image_url,omitempty"`
	Stock       int             `dynamodbav:"stock"`
	Sizes       []sizeStockItem `dynamodbav:"sizes,omitempty"`
}

// ProductDynamoRepository reads the Product catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small and read-only from this service, so category listing
// is a filtered scan instead of a dedicated index.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) ListByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#category = :category"),
		ExpressionAttributeNames: map[string]string{
			"#category": "category",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: category},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProducts(out.Items)
}

func (r *ProductDynamoRepository) ListAll(ctx context.Context, limit int) ([]entities.Product, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, err
	}
	return unmarshalProducts(out.Items)
}

func unmarshalProducts(raw []map[string]types.AttributeValue) ([]entities.Product, error) {
	products := make([]entities.Product, 0, len(raw))
	for _, item := range raw {
		var it productItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

func fromProductItem(it productItem) entities.Product {
	price, _ := strconv.ParseFloat(it.Price, 64)
	sizes := make([]entities.SizeStock, 0, len(it.Sizes))
	for _, s := range it.Sizes {
		sizes = append(sizes, entities.SizeStock{Size: s.Size, Quantity: s.Quantity})
	}
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		Category:    it.Category,
		ImageURL:    it.ImageURL,
		Stock:       it.Stock,
		Sizes:       sizes,
	}
}
