package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/onetech-shop/onetech-backend/internal/store/mocks"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	w := NewWarmer(storeMocks.NewMockStore(t), newFakeCache(), WithLogger(quietLogger()))

	sched, err := NewScheduler(w, 10*time.Minute, quietLogger())
	require.NoError(t, err)

	entries := sched.Entries()
	assert.Len(t, entries, 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	w := NewWarmer(storeMocks.NewMockStore(t), newFakeCache(), WithLogger(quietLogger()))

	sched, err := NewScheduler(w, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}
