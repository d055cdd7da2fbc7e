package database_test

import (
	"context"
	"testing"

	"github.com/credvault/alt_credit_scoring_app/pkg/database"
	"github.com/stretchr/testify/assert"
)

func TestNewPgxPool_EmptyURL(t *testing.T) {
	pool, err := database.NewPgxPool(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, pool)
}

func TestNewPgxPool_MalformedURL(t *testing.T) {
	pool, err := database.NewPgxPool(context.Background(), "not a connection string %%")
	assert.Error(t, err)
	assert.Nil(t, pool)
}

func TestClosePgxPool_NilPool(t *testing.T) {
	assert.NotPanics(t, func() { database.ClosePgxPool(nil) })
}
