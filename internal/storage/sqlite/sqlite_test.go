package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/finapi/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "finapi-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createUser(t *testing.T, store *SQLiteStore, name, email string) *models.User {
	t.Helper()

	user := models.NewUser(name, email, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "Alice", "alice@example.com")

	t.Run("GetUserByID returns stored user", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, alice.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got == nil {
			t.Fatal("Expected user, got nil")
		}
		if got.Name != "Alice" || got.Email != "alice@example.com" {
			t.Errorf("Unexpected user: %+v", got)
		}
		if !got.CreatedAt.Equal(alice.CreatedAt) {
			t.Errorf("CreatedAt mismatch: got %v, want %v", got.CreatedAt, alice.CreatedAt)
		}
	})

	t.Run("GetUserByEmail is case-insensitive", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "ALICE@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != alice.ID {
			t.Errorf("Expected alice, got %+v", got)
		}
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, "nonexistent-id")
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := models.NewUser("Other", "alice@example.com", "hash")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("Expected error for duplicate email, got nil")
		}
	})
}

func TestSQLiteStore_Statements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "Alice", "alice@example.com")
	bob := createUser(t, store, "Bob", "bob@example.com")

	deposit, err := store.CreateStatement(ctx, models.CreateStatementInput{
		UserID:      alice.ID,
		Type:        models.OperationTypeDeposit,
		Amount:      decimal.RequireFromString("500.25"),
		Description: "Salary",
	})
	if err != nil {
		t.Fatalf("CreateStatement failed: %v", err)
	}

	transfer, err := store.CreateStatement(ctx, models.CreateStatementInput{
		UserID:      bob.ID,
		SenderID:    alice.ID,
		Type:        models.OperationTypeTransfer,
		Amount:      decimal.NewFromInt(100),
		Description: "Rent share",
	})
	if err != nil {
		t.Fatalf("CreateStatement failed: %v", err)
	}

	t.Run("CreateStatement generates ID and timestamps", func(t *testing.T) {
		if deposit.ID == "" {
			t.Error("Expected statement ID to be generated")
		}
		if deposit.CreatedAt.IsZero() || !deposit.UpdatedAt.Equal(deposit.CreatedAt) {
			t.Errorf("Unexpected timestamps: created=%v updated=%v", deposit.CreatedAt, deposit.UpdatedAt)
		}
	})

	t.Run("FindStatementOperation round-trips every field", func(t *testing.T) {
		got, err := store.FindStatementOperation(ctx, transfer.ID, bob.ID)
		if err != nil {
			t.Fatalf("FindStatementOperation failed: %v", err)
		}
		if got == nil {
			t.Fatal("Expected statement, got nil")
		}
		if got.SenderID != alice.ID || got.UserID != bob.ID {
			t.Errorf("Party mismatch: sender=%s user=%s", got.SenderID, got.UserID)
		}
		if got.Type != models.OperationTypeTransfer {
			t.Errorf("Type mismatch: got %s", got.Type)
		}
		if !got.Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Amount mismatch: got %s", got.Amount)
		}
		if got.Description != "Rent share" {
			t.Errorf("Description mismatch: got %s", got.Description)
		}
	})

	t.Run("deposit has no sender", func(t *testing.T) {
		got, err := store.FindStatementOperation(ctx, deposit.ID, alice.ID)
		if err != nil {
			t.Fatalf("FindStatementOperation failed: %v", err)
		}
		if got == nil || got.SenderID != "" {
			t.Errorf("Expected deposit without sender, got %+v", got)
		}
		if got != nil && got.Amount.String() != "500.25" {
			t.Errorf("Amount precision lost: got %s", got.Amount)
		}
	})

	t.Run("FindStatementOperation hides statements owned by others", func(t *testing.T) {
		// alice sent the transfer but bob owns it
		got, err := store.FindStatementOperation(ctx, transfer.ID, alice.ID)
		if err != nil {
			t.Fatalf("FindStatementOperation failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil for foreign statement, got %+v", got)
		}

		got, err = store.FindStatementOperation(ctx, "nonexistent-id", alice.ID)
		if err != nil {
			t.Fatalf("FindStatementOperation failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil for missing statement, got %+v", got)
		}
	})

	t.Run("GetUserBalance folds both sides of a transfer", func(t *testing.T) {
		aliceBalance, err := store.GetUserBalance(ctx, alice.ID, true)
		if err != nil {
			t.Fatalf("GetUserBalance failed: %v", err)
		}
		if aliceBalance.Amount.String() != "400.25" {
			t.Errorf("Alice balance: got %s, want 400.25", aliceBalance.Amount)
		}
		if len(aliceBalance.Statements) != 2 {
			t.Fatalf("Alice statements: got %d, want 2", len(aliceBalance.Statements))
		}
		if aliceBalance.Statements[0].ID != deposit.ID || aliceBalance.Statements[1].ID != transfer.ID {
			t.Errorf("Statements out of insertion order")
		}

		bobBalance, err := store.GetUserBalance(ctx, bob.ID, true)
		if err != nil {
			t.Fatalf("GetUserBalance failed: %v", err)
		}
		if !bobBalance.Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Bob balance: got %s, want 100", bobBalance.Amount)
		}
		if len(bobBalance.Statements) != 1 {
			t.Errorf("Bob statements: got %d, want 1", len(bobBalance.Statements))
		}
	})

	t.Run("GetUserBalance omits statements when not requested", func(t *testing.T) {
		got, err := store.GetUserBalance(ctx, alice.ID, false)
		if err != nil {
			t.Fatalf("GetUserBalance failed: %v", err)
		}
		if got.Statements != nil {
			t.Errorf("Expected no statements, got %d", len(got.Statements))
		}
	})

	t.Run("user without statements has zero balance", func(t *testing.T) {
		carol := createUser(t, store, "Carol", "carol@example.com")
		got, err := store.GetUserBalance(ctx, carol.ID, true)
		if err != nil {
			t.Fatalf("GetUserBalance failed: %v", err)
		}
		if !got.Amount.IsZero() {
			t.Errorf("Expected zero balance, got %s", got.Amount)
		}
		if len(got.Statements) != 0 {
			t.Errorf("Expected no statements, got %d", len(got.Statements))
		}
	})
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "finapi-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "ledger.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	user := models.NewUser("Dana", "dana@example.com", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := store.CreateStatement(ctx, models.CreateStatementInput{
		UserID: user.ID,
		Type:   models.OperationTypeDeposit,
		Amount: decimal.NewFromInt(42),
	}); err != nil {
		t.Fatalf("CreateStatement failed: %v", err)
	}
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	balance, err := reopened.GetUserBalance(ctx, user.ID, false)
	if err != nil {
		t.Fatalf("GetUserBalance failed: %v", err)
	}
	if !balance.Amount.Equal(decimal.NewFromInt(42)) {
		t.Errorf("Expected balance 42 after reopen, got %s", balance.Amount)
	}
}
