package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/auth"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
	"github.com/jsamuelsen11/go-item-tracker/mocks"
)

// runCmd executes the root command with args against svc and returns
// stdout, stderr and the command error.
func runCmd(t *testing.T, svc ports.ItemService, stdin string, args ...string) (string, string, error) {
	t.Helper()

	a := &App{
		NewService: func(context.Context, *App) (ports.ItemService, error) {
			if svc == nil {
				t.Fatal("command should not build a service")
			}
			return svc, nil
		},
	}

	cmd := newRootCmd(a)
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCmd(t, nil, "correct horse\n", "hash-password")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	hash := strings.TrimSpace(stdout)
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("hash = %q, want argon2id PHC string", hash)
	}

	ok, err := auth.VerifyPassword("correct horse", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !ok {
		t.Error("VerifyPassword() = false, want true")
	}
}

func TestHashPassword_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCmd(t, nil, "s3cret", "hash-password")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	ok, err := auth.VerifyPassword("s3cret", strings.TrimSpace(stdout))
	if err != nil || !ok {
		t.Errorf("VerifyPassword() = %v, %v; want true, nil", ok, err)
	}
}

func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
	}{
		{name: "no input", stdin: ""},
		{name: "blank line", stdin: "\n"},
		{name: "crlf only", stdin: "\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr, err := runCmd(t, nil, tt.stdin, "hash-password")
			if !errors.Is(err, errEmptyPassword) {
				t.Errorf("Execute() error = %v, want %v", err, errEmptyPassword)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			if !strings.Contains(stderr, errEmptyPassword.Error()) {
				t.Errorf("stderr = %q, want it to mention %q", stderr, errEmptyPassword)
			}
		})
	}
}

func TestCollections(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockItemService(t)
	svc.EXPECT().ListCollections(mock.Anything).Return([]item.Collection{
		{ID: "db-1", Title: "Items"},
		{ID: "db-2", Title: "Archive"},
	}, nil)

	stdout, _, err := runCmd(t, svc, "", "collections")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got []dto.CollectionResponse
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Items" || got[1].ID != "db-2" {
		t.Errorf("collections = %+v", got)
	}
}

func TestItemsList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantReadOnly bool
	}{
		{name: "writable only", args: []string{"items", "list"}, wantReadOnly: false},
		{name: "with computed", args: []string{"items", "list", "--read-only"}, wantReadOnly: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockItemService(t)
			svc.EXPECT().ListItems(mock.Anything, tt.wantReadOnly).Return([]item.Item{
				{ID: "item-1", Properties: map[string]any{"Name": "Kettle"}},
			}, nil)

			stdout, _, err := runCmd(t, svc, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			var got dto.ItemListResponse
			if err := json.Unmarshal([]byte(stdout), &got); err != nil {
				t.Fatalf("decoding output: %v", err)
			}
			if got.Count != 1 || got.Items[0].Properties["Name"] != "Kettle" {
				t.Errorf("list = %+v", got)
			}
		})
	}
}

func TestItemsList_View(t *testing.T) {
	t.Parallel()

	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := mocks.NewMockItemService(t)
	svc.EXPECT().ListViews(mock.Anything).Return(&ports.ViewList{
		Views:    []item.View{{ID: "item-1", Name: "Kettle", PurchasePrice: 30, ServiceEndDate: end}},
		Rejected: []ports.Rejection{{ItemID: "item-2", Err: domain.ErrValidation}},
	}, nil)

	stdout, stderr, err := runCmd(t, svc, "", "items", "list", "--view")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got dto.ViewListResponse
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if got.Count != 1 || got.Rejected != 1 {
		t.Errorf("Count, Rejected = %d, %d; want 1, 1", got.Count, got.Rejected)
	}
	if got.Items[0].ServiceEndDate != "2024-03-01" {
		t.Errorf("ServiceEndDate = %q, want 2024-03-01", got.Items[0].ServiceEndDate)
	}
	if !strings.Contains(stderr, "rejected item-2") {
		t.Errorf("stderr = %q, want rejection report", stderr)
	}
}

func TestItemsList_ViewAndReadOnly(t *testing.T) {
	t.Parallel()

	_, _, err := runCmd(t, nil, "", "items", "list", "--view", "--read-only")
	if err == nil {
		t.Error("Execute() error = nil, want flag conflict")
	}
}

func TestItemsList_ServiceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockItemService(t)
	svc.EXPECT().ListItems(mock.Anything, false).Return(nil, domain.ErrTransport)

	_, stderr, err := runCmd(t, svc, "", "items", "list")
	if !errors.Is(err, domain.ErrTransport) {
		t.Errorf("Execute() error = %v, want %v", err, domain.ErrTransport)
	}
	if stderr == "" {
		t.Error("stderr is empty, want the error")
	}
}

func TestItemsArchive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results []ports.ArchiveResult
		wantErr error
	}{
		{
			name: "all archived",
			results: []ports.ArchiveResult{
				{ItemID: "a"},
				{ItemID: "b"},
			},
		},
		{
			name: "partial failure",
			results: []ports.ArchiveResult{
				{ItemID: "a"},
				{ItemID: "b", Err: domain.ErrNotFound},
			},
			wantErr: errArchiveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockItemService(t)
			svc.EXPECT().ArchiveItems(mock.Anything, []string{"a", "b"}).Return(tt.results)

			stdout, _, err := runCmd(t, svc, "", "items", "archive", "a", "b")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}

			var got []dto.ArchiveResultResponse
			if err := json.Unmarshal([]byte(stdout), &got); err != nil {
				t.Fatalf("decoding output: %v", err)
			}
			if len(got) != len(tt.results) {
				t.Fatalf("len(results) = %d, want %d", len(got), len(tt.results))
			}
			for i, r := range tt.results {
				if got[i].ID != r.ItemID || got[i].Archived != (r.Err == nil) {
					t.Errorf("results[%d] = %+v, want id %s archived %v", i, got[i], r.ItemID, r.Err == nil)
				}
			}
		})
	}
}

func TestItemsArchive_RequiresID(t *testing.T) {
	t.Parallel()

	_, _, err := runCmd(t, nil, "", "items", "archive")
	if err == nil {
		t.Error("Execute() error = nil, want argument error")
	}
}

func TestBuildService_RequiresProfile(t *testing.T) {
	t.Parallel()

	_, err := buildService(context.Background(), &App{})
	if err == nil {
		t.Error("buildService() error = nil, want missing profile error")
	}
}
