package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales_service/internal/domain/entities"
	"sales_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultSalesTableName = "sales"

type saleRecord struct {
	ID           string           `dynamodbav:"id"`
	SaleNumber   string           `dynamodbav:"sale_number"`
	SaleDate     string           `dynamodbav:"sale_date"`
	CustomerID   string           `dynamodbav:"customer_id"`
	CustomerName string           `dynamodbav:"customer_name"`
	BranchID     string           `dynamodbav:"branch_id"`
	BranchName   string           `dynamodbav:"branch_name"`
	Status       string           `dynamodbav:"status"`
	TotalAmount  string           `dynamodbav:"total_amount"`
	Items        []saleItemRecord `dynamodbav:"items"`
	UpdatedAt    string           `dynamodbav:"updated_at"`
}

type saleItemRecord struct {
	ID                 string `dynamodbav:"id"`
	ProductID          string `dynamodbav:"product_id"`
	ProductDescription string `dynamodbav:"product_description"`
	Quantity           int    `dynamodbav:"quantity"`
	UnitPrice          string `dynamodbav:"unit_price"`
	DiscountPercentage string `dynamodbav:"discount_percentage"`
	TotalAmount        string `dynamodbav:"total_amount"`
	IsCancelled        bool   `dynamodbav:"is_cancelled"`
}

// SaleDynamoRepository persists Sale aggregates in DynamoDB, one item per sale.
//
// Table requirements:
//   - PK: id (string)
//
// Items live in a nested list so a sale is always read and written as a whole.
type SaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: salesTableName(),
	}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s *entities.Sale) error {
	return r.put(ctx, s, "attribute_not_exists(#id)")
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            saleKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var rec saleRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, err
	}
	return fromSaleRecord(rec)
}

// Update replaces the stored sale. It reports false when the sale no longer exists.
func (r *SaleDynamoRepository) Update(ctx context.Context, s *entities.Sale) (bool, error) {
	err := r.put(ctx, s, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *SaleDynamoRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          saleKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *SaleDynamoRepository) put(ctx context.Context, s *entities.Sale, condition string) error {
	av, err := attributevalue.MarshalMap(toSaleRecord(s.Snapshot(), time.Now().UTC()))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func saleKey(id uuid.UUID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id.String()},
	}
}

func toSaleRecord(s entities.SaleSnapshot, now time.Time) saleRecord {
	rec := saleRecord{
		ID:           s.ID.String(),
		SaleNumber:   s.SaleNumber,
		SaleDate:     s.SaleDate.UTC().Format(time.RFC3339Nano),
		CustomerID:   s.CustomerID.String(),
		CustomerName: s.CustomerName,
		BranchID:     s.BranchID.String(),
		BranchName:   s.BranchName,
		Status:       string(s.Status),
		TotalAmount:  s.TotalAmount.String(),
		Items:        make([]saleItemRecord, 0, len(s.Items)),
		UpdatedAt:    now.Format(time.RFC3339Nano),
	}
	for _, it := range s.Items {
		rec.Items = append(rec.Items, saleItemRecord{
			ID:                 it.ID.String(),
			ProductID:          it.ProductID.String(),
			ProductDescription: it.ProductDescription,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice.String(),
			DiscountPercentage: it.DiscountPercentage.String(),
			TotalAmount:        it.TotalAmount.String(),
			IsCancelled:        it.IsCancelled,
		})
	}
	return rec
}

func fromSaleRecord(rec saleRecord) (*entities.Sale, error) {
	p := &recordParser{}
	snap := entities.SaleSnapshot{
		ID:           p.parseUUID("id", rec.ID),
		SaleNumber:   rec.SaleNumber,
		SaleDate:     p.parseTime("sale_date", rec.SaleDate),
		CustomerID:   p.parseUUID("customer_id", rec.CustomerID),
		CustomerName: rec.CustomerName,
		BranchID:     p.parseUUID("branch_id", rec.BranchID),
		BranchName:   rec.BranchName,
		Status:       entities.SaleStatus(rec.Status),
		TotalAmount:  p.parseDecimal("total_amount", rec.TotalAmount),
		Items:        make([]entities.SaleItemSnapshot, 0, len(rec.Items)),
	}
	for _, it := range rec.Items {
		snap.Items = append(snap.Items, entities.SaleItemSnapshot{
			ID:                 p.parseUUID("items.id", it.ID),
			SaleID:             snap.ID,
			ProductID:          p.parseUUID("items.product_id", it.ProductID),
			ProductDescription: it.ProductDescription,
			Quantity:           it.Quantity,
			UnitPrice:          p.parseDecimal("items.unit_price", it.UnitPrice),
			DiscountPercentage: p.parseDecimal("items.discount_percentage", it.DiscountPercentage),
			TotalAmount:        p.parseDecimal("items.total_amount", it.TotalAmount),
			IsCancelled:        it.IsCancelled,
		})
	}
	if p.err != nil {
		return nil, p.err
	}
	return entities.RestoreSale(snap)
}

// recordParser keeps the first conversion error so mapping code stays linear.
type recordParser struct {
	err error
}

func (p *recordParser) parseUUID(field, v string) uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("sale record %s: %w", field, err)
	}
	return id
}

func (p *recordParser) parseDecimal(field, v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("sale record %s: %w", field, err)
	}
	return d
}

func (p *recordParser) parseTime(field, v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("sale record %s: %w", field, err)
	}
	return t
}
