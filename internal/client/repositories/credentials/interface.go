// Package credentials persists the client's two authentication slots:
// the bearer token and the last known user snapshot. The slots live in a
// key-value table in the local database and survive process restarts.
package credentials

import (
	"context"
)

// Slot keys. These are the only two keys the client ever writes.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Repository is a durable key-value store for credential slots.
// Get returns (nil, nil) when the key is absent. SaveSession writes the
// token and the user snapshot together, so a crash between the two writes
// cannot leave a token without its matching snapshot.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	SaveSession(ctx context.Context, token string, user []byte) error
}

// Tokens adapts a Repository to the token-source contract of the API
// layer: the token is read from storage at call time, so a logout between
// two requests is observed by the second one.
type Tokens struct {
	Repo Repository
}

// Token returns the stored bearer token, or "" when none is persisted.
func (t Tokens) Token(ctx context.Context) (string, error) {
	v, err := t.Repo.Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}
