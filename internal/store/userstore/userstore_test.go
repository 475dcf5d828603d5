package userstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
)

func TestCreate(t *testing.T) {
	t.Parallel()

	s := New()

	assert.True(t, s.Create("alice"))
	assert.False(t, s.Create("alice"))
}

func TestGetMissingCurrencyReadsZero(t *testing.T) {
	t.Parallel()

	s := New()
	s.Create("alice")

	balances, ok := s.Get("alice")
	assert.True(t, ok)
	assert.Equal(t, int64(0), balances["usd"])
}

func TestUpdateUnknownUser(t *testing.T) {
	t.Parallel()

	s := New()
	assert.False(t, s.Update("ghost", mmodel.Balances{"usd": 100}))
}

func TestUpdateReplacesWholeMap(t *testing.T) {
	t.Parallel()

	s := New()
	s.Create("alice")
	assert.True(t, s.Update("alice", mmodel.Balances{"usd": 500}))

	balance, ok := s.Balance("alice", "usd")
	assert.True(t, ok)
	assert.Equal(t, int64(500), balance)
}

func TestConcurrentCreateIsAtomic(t *testing.T) {
	t.Parallel()

	s := New()

	const n = 50

	var wg sync.WaitGroup

	successes := make([]bool, n)

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			successes[i] = s.Create("same-user")
		}(i)
	}

	wg.Wait()

	count := 0
	for _, ok := range successes {
		if ok {
			count++
		}
	}

	assert.Equal(t, 1, count)
}
