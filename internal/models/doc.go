// Package models defines the core domain models for finapi.
//
// # Models
//
//   - User: a registered account that owns statements
//   - Statement: one immutable ledger entry (deposit, withdraw or transfer)
//   - Balance: a user's running balance, optionally with the statements it was folded from
//
// # Design Principles
//
// 1. **Append-only ledger**: statements are never updated or deleted once created
// 2. **Derived balance**: a balance is always recomputed from history, never stored
// 3. **One record per transfer**: the sender's debit and the receiver's credit are
//    two readings of the same statement
// 4. **Avoid circular references**: relationships use ID strings instead of pointers
package models
