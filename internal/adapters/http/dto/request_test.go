package dto_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
)

func ptr[T any](v T) *T { return &v }

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.LoginRequest
		wantFields []string
	}{
		{name: "valid", req: dto.LoginRequest{Username: "admin", Password: "pw"}},
		{name: "blank username", req: dto.LoginRequest{Username: "  ", Password: "pw"}, wantFields: []string{"username"}},
		{name: "both missing", req: dto.LoginRequest{}, wantFields: []string{"username", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertFields(t, tt.req.Validate(), tt.wantFields)
		})
	}
}

func TestCreateItemRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.CreateItemRequest
		wantFields []string
	}{
		{
			name: "valid minimal",
			req:  dto.CreateItemRequest{Name: "Kindle", EntryDate: "2021-06-01", PurchasePrice: ptr(899.0)},
		},
		{
			name: "zero price is allowed",
			req:  dto.CreateItemRequest{Name: "Gift", EntryDate: "2021-06-01", PurchasePrice: ptr(0.0)},
		},
		{
			name:       "missing everything",
			req:        dto.CreateItemRequest{},
			wantFields: []string{"name", "entry_date", "purchase_price"},
		},
		{
			name: "bad retirement date",
			req: dto.CreateItemRequest{
				Name: "Kindle", EntryDate: "2021-06-01", PurchasePrice: ptr(1.0),
				RetirementDate: ptr("31/01/2025"),
			},
			wantFields: []string{"retirement_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertFields(t, tt.req.Validate(), tt.wantFields)
		})
	}
}

func TestCreateItemRequest_ToDraft(t *testing.T) {
	t.Parallel()

	req := dto.CreateItemRequest{
		Name:            " Kindle ",
		EntryDate:       "2021-06-01",
		PurchasePrice:   ptr(899.0),
		AdditionalValue: ptr(50.0),
		RetirementDate:  ptr(" 2025-01-31"),
		Note:            ptr("gift"),
	}

	want := &item.Draft{
		Name:            "Kindle",
		EntryDate:       "2021-06-01",
		PurchasePrice:   899,
		AdditionalValue: ptr(50.0),
		RetirementDate:  "2025-01-31",
		Note:            ptr("gift"),
	}
	if diff := cmp.Diff(want, req.ToDraft()); diff != "" {
		t.Errorf("ToDraft() mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateItemRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (dto.UpdateItemRequest{}).Validate(); !errors.Is(err, domain.ErrNoChanges) {
		t.Errorf("Validate(empty) = %v, want ErrNoChanges", err)
	}
	if err := (dto.UpdateItemRequest{"备注": nil}).Validate(); err != nil {
		t.Errorf("Validate(clear note) = %v, want nil", err)
	}
}

func assertFields(t *testing.T, err error, want []string) {
	t.Helper()

	if len(want) == 0 {
		if err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
		return
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != len(want) {
		t.Errorf("Fields = %v, want keys %v", verr.Fields, want)
	}
	for _, f := range want {
		if _, ok := verr.Fields[f]; !ok {
			t.Errorf("Fields[%q] missing, got %v", f, verr.Fields)
		}
	}
}
