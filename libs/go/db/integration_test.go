package db_test

import (
	"context"
	"math/big"
	"os"
	"sync"
	"testing"

	"github.com/amped-finance/amped-api/libs/go/db"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a live Postgres; set TEST_DATABASE_URL to run.
func newTestQueries(t *testing.T) *db.Queries {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := db.NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, db.Migrate(ctx, pool))
	return db.New(pool)
}

func TestPostgresNonceStore(t *testing.T) {
	queries := newTestQueries(t)
	store := db.NewNonceStore(queries)
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	account := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := store.Nonce(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonce)

	next, err := store.Consume(ctx, account, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), next)

	_, err = store.Consume(ctx, account, 0)
	assert.ErrorIs(t, err, stakingrouter.ErrNonceMismatch)

	next, err = store.Consume(ctx, account, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), next)
}

func TestPostgresNonceStoreConcurrentConsume(t *testing.T) {
	queries := newTestQueries(t)
	store := db.NewNonceStore(queries)
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	account := crypto.PubkeyToAddress(key.PublicKey)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Consume(ctx, account, 0); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	nonce, err := store.Nonce(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), nonce)
}

func TestPostgresRecorder(t *testing.T) {
	queries := newTestQueries(t)
	recorder := db.NewRecorder(queries)
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	account := crypto.PubkeyToAddress(key.PublicKey)
	nonce := uint64(0)

	_, err = recorder.RecordAuthorization(ctx, db.AuthorizationAttempt{
		Account: account, Amount: big.NewInt(5), Deadline: 10, Delegated: true,
		Err: stakingrouter.ErrExpiredAuthorization,
	})
	require.NoError(t, err)
	_, err = recorder.RecordAuthorization(ctx, db.AuthorizationAttempt{
		Account: account, Amount: big.NewInt(5), Nonce: &nonce, Deadline: 2_000_000_000, Delegated: true,
	})
	require.NoError(t, err)

	rows, err := recorder.ListAuthorizations(ctx, account, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	outcomes := []db.AuthorizationOutcome{rows[0].Outcome, rows[1].Outcome}
	assert.ElementsMatch(t, []db.AuthorizationOutcome{db.AuthorizationOutcomeExpired, db.AuthorizationOutcomeStaked}, outcomes)
	for _, row := range rows {
		assert.Equal(t, "5", db.NumericToBigInt(row.Amount).String())
	}
}
