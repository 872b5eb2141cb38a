package repository

import (
	"context"
	"strconv"
	"time"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDiscountCodesTableName = "discount_codes"

type discountCodeItem struct {
	Code        string `dynamodbav:"code"`
	Percent     string `dynamodbav:"percent"`
	MinPurchase string `dynamodbav:"min_purchase"`
	Active      bool   `dynamodbav:"active"`
	ValidUntil  string `dynamodbav:"valid_until,omitempty"`
}

// DiscountDynamoRepository reads DiscountCode records from DynamoDB.
//
// Table requirements:
//   - PK: code (string, canonical upper-case)

type DiscountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDiscountRepository = (*DiscountDynamoRepository)(nil)

func NewDiscountDynamoRepository(ddb *dynamodb.Client) *DiscountDynamoRepository {
	return &DiscountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISCOUNT_CODES_TABLE", defaultDiscountCodesTableName),
	}
}

func (r *DiscountDynamoRepository) GetByCode(ctx context.Context, code string) (entities.DiscountCode, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: entities.CanonicalCode(code)},
		},
	})
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if len(out.Item) == 0 {
		return entities.DiscountCode{}, nil
	}

	var it discountCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DiscountCode{}, err
	}
	return fromDiscountCodeItem(it), nil
}

func fromDiscountCodeItem(it discountCodeItem) entities.DiscountCode {
	percent, _ := strconv.ParseFloat(it.Percent, 64)
	minPurchase, _ := strconv.ParseFloat(it.MinPurchase, 64)

	var validUntil *time.Time
	if it.ValidUntil != "" {
		t := parseTime(it.ValidUntil)
		validUntil = &t
	}

	return entities.DiscountCode{
		Code:        it.Code,
		Percent:     percent,
		MinPurchase: minPurchase,
		Active:      it.Active,
		ValidUntil:  validUntil,
	}
}
