package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
)

const testItemID = "2046dedb-b716-8148-8942-efb45cca9a33"

var testToday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validItem() item.Item {
	return item.Item{
		ID: testItemID,
		Properties: map[string]any{
			"物品名称": "红米 K40",
			"购买价格": 2499.0,
			"入役日期": "2021-06-10",
		},
	}
}

func validView() item.View {
	start := time.Date(2021, 6, 10, 0, 0, 0, 0, time.UTC)
	return item.View{
		ID:               testItemID,
		Name:             "红米 K40",
		PurchasePrice:    2499,
		ServiceStartDate: &start,
		ServiceEndDate:   testToday,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
