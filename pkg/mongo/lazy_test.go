package mongo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formdesk/contactapi/pkg/mongo"
)

func TestLazyConn_MissingURL(t *testing.T) {
	t.Parallel()

	conn := mongo.NewLazyConn(mongo.Config{Database: "contactform"})

	t.Run("first use surfaces missing URL", func(t *testing.T) {
		db, err := conn.DB(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, mongo.ErrMissingConnectionURL)
		assert.Nil(t, db)
	})

	t.Run("failure is not poisoned", func(t *testing.T) {
		// A second call runs a fresh attempt and reports the same
		// error instead of a stale cached failure.
		_, err := conn.DB(context.Background())
		assert.ErrorIs(t, err, mongo.ErrMissingConnectionURL)
	})

	t.Run("close without connection is a no-op", func(t *testing.T) {
		assert.NoError(t, conn.Close(context.Background()))
	})
}

func TestLazyConn_ConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	cfg := mongo.Config{
		ConnectionURL:  "mongodb://127.0.0.1:1",
		Database:       "contactform",
		ConnectTimeout: 50 * time.Millisecond,
		RetryAttempts:  1,
		RetryInterval:  time.Millisecond,
	}
	conn := mongo.NewLazyConn(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// All goroutines race the single in-flight attempt; none may panic
	// and each must receive an error for the unreachable store.
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = conn.DB(ctx)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.Error(t, err)
	}
}

func TestNew_MissingURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrMissingConnectionURL)
}

func TestHealthcheck_NilClient(t *testing.T) {
	t.Parallel()

	err := mongo.Healthcheck(nil)(context.Background())
	assert.ErrorIs(t, err, mongo.ErrHealthcheckFailed)
}
