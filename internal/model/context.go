package model

import "context"

type ContextManager interface {
	SetAddressToContext(ctx context.Context, address Address) context.Context
	GetAddressFromContext(ctx context.Context) (Address, bool)
}
