package oracle

import "context"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=oracle.go -destination=mocks/oracle.gen.go -package=mocks

// Oracle is a predicate over the files currently persisted on disk.
type Oracle interface {
	// Check blocks until the verdict is known and reports whether it passed.
	Check(ctx context.Context) bool
}

// Func adapts an ordinary function to the Oracle interface.
type Func func(ctx context.Context) bool

// Check calls f(ctx).
func (f Func) Check(ctx context.Context) bool {
	return f(ctx)
}
