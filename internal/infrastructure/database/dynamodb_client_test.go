package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTableAPI struct {
	exists      bool
	describeErr error
	createErr   error
	created     *dynamodb.CreateTableInput
}

func (f *fakeTableAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	if !f.exists {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableName: in.TableName, TableStatus: types.TableStatusActive}}, nil
}

func (f *fakeTableAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = in
	f.exists = true
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureSalesTable(t *testing.T) {
	t.Run("existing table", func(t *testing.T) {
		api := &fakeTableAPI{exists: true}
		if err := EnsureSalesTable(context.Background(), api, "sales"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if api.created != nil {
			t.Fatalf("expected no CreateTable call")
		}
	})

	t.Run("creates missing table", func(t *testing.T) {
		api := &fakeTableAPI{}
		if err := EnsureSalesTable(context.Background(), api, "sales"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if api.created == nil || aws.ToString(api.created.TableName) != "sales" {
			t.Fatalf("expected sales table to be created, got %+v", api.created)
		}
		if api.created.BillingMode != types.BillingModePayPerRequest {
			t.Fatalf("expected on-demand billing, got %s", api.created.BillingMode)
		}
		if len(api.created.KeySchema) != 1 || aws.ToString(api.created.KeySchema[0].AttributeName) != "id" {
			t.Fatalf("unexpected key schema: %+v", api.created.KeySchema)
		}
	})

	t.Run("concurrent creation", func(t *testing.T) {
		api := &fakeTableAPI{createErr: &types.ResourceInUseException{Message: aws.String("in use")}}
		if err := EnsureSalesTable(context.Background(), api, "sales"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("describe failure", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: errors.New("access denied")}
		if err := EnsureSalesTable(context.Background(), api, "sales"); err == nil || err.Error() != "access denied" {
			t.Fatalf("expected access denied, got %v", err)
		}
	})
}

func TestDynamoEndpointOption(t *testing.T) {
	var o dynamodb.Options
	dynamoEndpointOption("")(&o)
	if o.BaseEndpoint != nil {
		t.Fatalf("expected no endpoint override")
	}
	dynamoEndpointOption("http://dynamodb:8000")(&o)
	if aws.ToString(o.BaseEndpoint) != "http://dynamodb:8000" {
		t.Fatalf("unexpected endpoint: %v", aws.ToString(o.BaseEndpoint))
	}
}
