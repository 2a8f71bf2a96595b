package repositories

import "context"

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager handles database transactions. Write operations that
// must see a consistent snapshot (version numbering, reparent cycle checks,
// chain linearization) run their repository calls inside ExecTx.
type TransactionManager interface {
	// ExecTx executes a function within a transaction. The function's
	// context carries the transaction so repositories join it
	// automatically.
	ExecTx(ctx context.Context, fn TxFn) error
}
