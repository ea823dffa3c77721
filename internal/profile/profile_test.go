package profile

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/store"
)

func newTestProfile(t *testing.T) (*Service, *store.Store, *clock.Fixed) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	clk := &clock.Fixed{T: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return NewService(st, clk), st, clk
}

func TestRegister(t *testing.T) {
	svc, st, clk := newTestProfile(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", Registration{
		Name: "Alice", Age: "29", Email: "alice@example.com", Goal: "Travel",
	})
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, clk.T, user.CreatedAt)

	counts, err := st.Events().CountByNameSince(ctx, "alice", clk.T.Add(-time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, counts[store.EventRegisterCompleted])
}

func TestRegister_ExistingProfileUnchanged(t *testing.T) {
	svc, _, _ := newTestProfile(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", Registration{Name: "Alice"})
	require.NoError(t, err)

	user, err := svc.Register(ctx, "alice", Registration{Name: "Someone Else"})
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)
}

func TestGet_Unregistered(t *testing.T) {
	svc, _, _ := newTestProfile(t)

	_, err := svc.Get(context.Background(), "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateField(t *testing.T) {
	svc, _, _ := newTestProfile(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", Registration{Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateField(ctx, "alice", "goal", "Work"))
	user, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "Work", user.Goal)

	require.Error(t, svc.UpdateField(ctx, "alice", "weaknesses", "hacked"))
}

func TestCompletePlacement(t *testing.T) {
	svc, st, _ := newTestProfile(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", Registration{Name: "Alice", Level: "A1"})
	require.NoError(t, err)

	err = svc.CompletePlacement(ctx, "alice", "B1", 5, 8, []string{"grammar:articles"})
	require.NoError(t, err)

	user, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "B1", user.CEFR)
	require.Equal(t, "B1", user.Level)
	require.Equal(t, []string{"grammar:articles"}, user.Weaknesses)

	events, err := st.Events().Recent(ctx, "alice", store.EventPlacementCompleted, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, float64(5), events[0].Payload["score"])
	require.Equal(t, "B1", events[0].Payload["cefr"])
}
