package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/finapi/internal/models"
)

func TestStore_ReturnsCopies(t *testing.T) {
	store := New()
	ctx := context.Background()

	created, err := store.CreateStatement(ctx, models.CreateStatementInput{
		UserID: "alice",
		Type:   models.OperationTypeDeposit,
		Amount: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("CreateStatement failed: %v", err)
	}

	// Mutating the returned value must not reach the ledger.
	created.Amount = decimal.NewFromInt(1_000_000)

	balance, err := store.GetUserBalance(ctx, "alice", true)
	if err != nil {
		t.Fatalf("GetUserBalance failed: %v", err)
	}
	if !balance.Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected balance 10, got %s", balance.Amount)
	}

	balance.Statements[0].Description = "tampered"
	found, _ := store.FindStatementOperation(ctx, created.ID, "alice")
	if found == nil || found.Description != "" {
		t.Errorf("Expected untouched statement, got %+v", found)
	}
}

func TestStore_Users(t *testing.T) {
	store := New()
	ctx := context.Background()

	user := models.NewUser("Alice", "alice@example.com", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := store.CreateUser(ctx, models.NewUser("Other", "ALICE@example.com", "hash")); err == nil {
		t.Error("Expected duplicate email error")
	}

	got, err := store.GetUserByEmail(ctx, "Alice@Example.com")
	if err != nil || got == nil || got.ID != user.ID {
		t.Errorf("GetUserByEmail: got %+v, err %v", got, err)
	}

	missing, err := store.GetUserByID(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("GetUserByID: expected nil, nil; got %+v, %v", missing, err)
	}
}

func TestStore_ConcurrentAppends(t *testing.T) {
	store := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.CreateStatement(ctx, models.CreateStatementInput{
				UserID: "alice",
				Type:   models.OperationTypeDeposit,
				Amount: decimal.NewFromInt(2),
			})
		}()
	}
	wg.Wait()

	balance, err := store.GetUserBalance(ctx, "alice", true)
	if err != nil {
		t.Fatalf("GetUserBalance failed: %v", err)
	}
	if !balance.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected balance 100, got %s", balance.Amount)
	}
	if len(balance.Statements) != 50 {
		t.Errorf("Expected 50 statements, got %d", len(balance.Statements))
	}
}
