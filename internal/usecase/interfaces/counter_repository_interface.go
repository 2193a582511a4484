package interfaces

import "context"

// ICounterRepository hands out monotonically increasing sequence numbers
// (order numbers, request numbers). Next must be atomic at the store level;
// a number, once returned, is never reissued.

type ICounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
