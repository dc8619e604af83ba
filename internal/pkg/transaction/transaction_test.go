package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type ctxKey struct{}

func TestPassthrough(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	boom := errors.New("boom")

	err := Passthrough.RunInTransaction(ctx, func(inner context.Context) error {
		assert.Equal(t, "v", inner.Value(ctxKey{}))
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
