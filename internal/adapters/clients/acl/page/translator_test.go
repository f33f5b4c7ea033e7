package page

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/clients/acl/property"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
)

const samplePage = `{
	"object":     "page",
	"id":         "2056dedb-b716-8055-ad48-d7c4ab5a18e7",
	"parent":     {"type": "database_id", "database_id": "2046dedb-b716-8148-8942-efb45cca9a33"},
	"archived":   false,
	"url":        "https://www.notion.so/2056dedbb7168055ad48d7c4ab5a18e7",
	"properties": {
		"物品名称": {"id": "title", "type": "title", "title": [
			{"type": "text", "plain_text": "Kindle ", "text": {"content": "Kindle "}},
			{"type": "text", "plain_text": "Paperwhite", "text": {"content": "Paperwhite"}}
		]},
		"购买价格": {"id": "a%3Bb", "type": "number", "number": 998},
		"附加价值": {"id": "c%3Dd", "type": "number", "number": null},
		"入役日期": {"id": "e%3Ef", "type": "date", "date": {"start": "2021-09-01", "end": null}},
		"退役日期": {"id": "g%3Fh", "type": "date", "date": null},
		"备注":   {"id": "i%3Aj", "type": "rich_text", "rich_text": []},
		"日均价格": {"id": "k%3Bl", "type": "formula", "formula": {"type": "string", "string": "0.75 元"}},
		"服役天数": {"id": "m%3Cn", "type": "formula", "formula": {"type": "number", "number": 1331}},
		"创建时间": {"id": "o%3Dp", "type": "created_time", "created_time": "2021-09-01T08:00:00.000Z"},
		"状态":   {"id": "q%3Er", "type": "status", "status": {"name": "Done"}}
	}
}`

func mustPage(t *testing.T, raw string) *PageDTO {
	t.Helper()

	var dto PageDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("unmarshal page: %v", err)
	}
	return &dto
}

func TestToDomainItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		includeReadOnly bool
		want            map[string]any
	}{
		{
			name: "writable properties only",
			want: map[string]any{
				"物品名称": "Kindle Paperwhite",
				"购买价格": 998.0,
				"入役日期": "2021-09-01",
				"备注":   "",
			},
		},
		{
			name:            "with read-only properties",
			includeReadOnly: true,
			want: map[string]any{
				"物品名称": "Kindle Paperwhite",
				"购买价格": 998.0,
				"入役日期": "2021-09-01",
				"备注":   "",
				"日均价格": "0.75 元",
				"服役天数": 1331.0,
				"创建时间": "2021-09-01T08:00:00.000Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, skipped := ToDomainItem(mustPage(t, samplePage), tt.includeReadOnly)

			if got.ID != "2056dedb-b716-8055-ad48-d7c4ab5a18e7" {
				t.Errorf("ID = %q, want page id", got.ID)
			}
			if got.Archived {
				t.Error("Archived = true, want false")
			}
			if diff := cmp.Diff(tt.want, got.Properties); diff != "" {
				t.Errorf("Properties mismatch (-want +got):\n%s", diff)
			}
			if !slices.Equal(skipped, []string{"状态"}) {
				t.Errorf("skipped = %v, want [状态]", skipped)
			}
		})
	}
}

func TestToDomainItem_InTrashIsArchived(t *testing.T) {
	t.Parallel()

	got, _ := ToDomainItem(&PageDTO{ID: "p1", InTrash: true}, false)
	if !got.Archived {
		t.Error("Archived = false, want true for a trashed page")
	}
}

func TestToDomainItem_ConvertsDateRanges(t *testing.T) {
	t.Parallel()

	end := "2024-03-15"
	dto := &PageDTO{
		ID: "p1",
		Properties: map[string]property.Property{
			"period":  {Type: property.TypeDate, Date: &property.DateValue{Start: "2021-09-01", End: &end}},
			"history": {Type: property.TypeRollup, Rollup: &property.Rollup{
				Type: property.RollupArray,
				Array: []json.RawMessage{
					json.RawMessage(`{"type":"date","date":{"start":"2020-01-01","end":"2020-02-01"}}`),
					json.RawMessage(`"plain"`),
				},
			}},
		},
	}

	got, _ := ToDomainItem(dto, true)

	want := map[string]any{
		"period":  item.DateRange{Start: "2021-09-01", End: "2024-03-15"},
		"history": []any{
			item.DateRange{Start: "2020-01-01", End: "2020-02-01"},
			"plain",
		},
	}
	if diff := cmp.Diff(want, got.Properties); diff != "" {
		t.Errorf("Properties mismatch (-want +got):\n%s", diff)
	}
}

func TestToDomainItemList(t *testing.T) {
	t.Parallel()

	dto := PageListResponseDTO{Results: []PageDTO{{ID: "a"}, {ID: "b"}}}

	got, skipped := ToDomainItemList(dto, false)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("IDs = %q, %q, want a, b in remote order", got[0].ID, got[1].ID)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}
}

func TestToDomainCollectionList(t *testing.T) {
	t.Parallel()

	dto := DatabaseListResponseDTO{Results: []DatabaseDTO{
		{
			Object: ObjectDatabase,
			ID:     "2046dedb-b716-8148-8942-efb45cca9a33",
			Title:  []property.RichText{{PlainText: "物品"}, {PlainText: "追踪"}},
		},
		{Object: ObjectPage, ID: "not-a-db"},
	}}

	got := ToDomainCollectionList(dto)
	want := []item.Collection{{ID: "2046dedb-b716-8148-8942-efb45cca9a33", Title: "物品追踪"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("collections mismatch (-want +got):\n%s", diff)
	}
}

func TestToArchivePageRequest(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(ToArchivePageRequest())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"archived":true}` {
		t.Errorf("body = %s, want {\"archived\":true}", body)
	}
}

func TestToCreatePageRequest(t *testing.T) {
	t.Parallel()

	price := 12.5
	req := ToCreatePageRequest("db-1", map[string]property.Payload{
		"title": {Type: property.TypeTitle, Title: []property.TextRun{{Text: property.TextBody{Content: "Pen"}}}},
		"a%3Bb": {Type: property.TypeNumber, Number: &price},
	})

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{
		"parent":     map[string]any{"type": "database_id", "database_id": "db-1"},
		"properties": map[string]any{
			"title": map[string]any{"title": []any{map[string]any{"text": map[string]any{"content": "Pen"}}}},
			"a%3Bb": map[string]any{"number": 12.5},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("create body mismatch (-want +got):\n%s", diff)
	}
}
