package tokenstore

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/photoalbum/internal/client/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	repos, err := repositories.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return NewSQLiteStore(repos.DB)
}

func backends(t *testing.T) map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory": func(*testing.T) Store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Store { return newSQLiteStore(t) },
	}
}

func TestStore_GetEmpty(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			tok, ok, err := s.Get(context.Background())
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, tok)

			rev, err := s.Revision(context.Background())
			require.NoError(t, err)
			assert.Zero(t, rev)
		})
	}
}

func TestStore_SetThenGet(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			require.NoError(t, s.Set(ctx, "T1"))
			tok, ok, err := s.Get(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "T1", tok)

			require.NoError(t, s.Set(ctx, "T2"))
			tok, _, err = s.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, "T2", tok)

			rev, err := s.Revision(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(2), rev)
		})
	}
}

func TestStore_WhitespaceIsPresent(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			require.NoError(t, s.Set(ctx, "  "))
			tok, ok, err := s.Get(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "  ", tok)
		})
	}
}

func TestStore_SetSameValueDoesNotBumpRevision(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			require.NoError(t, s.Set(ctx, "T1"))
			require.NoError(t, s.Set(ctx, "T1"))

			rev, err := s.Revision(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1), rev)
		})
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			require.NoError(t, s.Clear(ctx))
			rev, err := s.Revision(ctx)
			require.NoError(t, err)
			assert.Zero(t, rev)

			require.NoError(t, s.Set(ctx, "T1"))
			require.NoError(t, s.Clear(ctx))
			require.NoError(t, s.Clear(ctx))

			_, ok, err := s.Get(ctx)
			require.NoError(t, err)
			assert.False(t, ok)

			rev, err = s.Revision(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(2), rev)
		})
	}
}

func TestStore_SetEmptyClears(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			require.NoError(t, s.Set(ctx, "T1"))
			require.NoError(t, s.Set(ctx, ""))

			_, ok, err := s.Get(ctx)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_ClearIf(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			require.NoError(t, s.Set(ctx, "T2"))

			cleared, err := s.ClearIf(ctx, "T1")
			require.NoError(t, err)
			assert.False(t, cleared)

			tok, ok, err := s.Get(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "T2", tok)

			cleared, err = s.ClearIf(ctx, "T2")
			require.NoError(t, err)
			assert.True(t, cleared)

			_, ok, err = s.Get(ctx)
			require.NoError(t, err)
			assert.False(t, ok)

			cleared, err = s.ClearIf(ctx, "T2")
			require.NoError(t, err)
			assert.False(t, cleared)
		})
	}
}

// slotModel is the reference behaviour both backends are checked against.
type slotModel struct {
	token    string
	revision int64
}

func (m *slotModel) set(token string) {
	if m.token == token {
		return
	}
	m.token = token
	m.revision++
}

func (m *slotModel) clearIf(token string) bool {
	if m.token == "" || m.token != token {
		return false
	}
	m.set("")
	return true
}

func TestStore_RandomSequenceMatchesModel(t *testing.T) {
	values := []string{"", "A", "B", " "}

	for name, mk := range backends(t) {
		for seed := uint64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("%s/seed-%d", name, seed), func(t *testing.T) {
				ctx := context.Background()
				s := mk(t)
				rnd := rand.New(rand.NewSource(int64(seed)))
				var m slotModel

				for i := 0; i < 150; i++ {
					v := values[rnd.Intn(len(values))]
					var op string
					switch rnd.Intn(3) {
					case 0:
						op = fmt.Sprintf("set(%q)", v)
						require.NoError(t, s.Set(ctx, v), op)
						m.set(v)
					case 1:
						op = "clear"
						require.NoError(t, s.Clear(ctx), op)
						m.set("")
					default:
						op = fmt.Sprintf("clearIf(%q)", v)
						cleared, err := s.ClearIf(ctx, v)
						require.NoError(t, err, op)
						assert.Equal(t, m.clearIf(v), cleared, "step %d %s", i, op)
					}

					tok, ok, err := s.Get(ctx)
					require.NoError(t, err)
					assert.Equal(t, m.token, tok, "step %d %s", i, op)
					assert.Equal(t, m.token != "", ok, "step %d %s", i, op)

					rev, err := s.Revision(ctx)
					require.NoError(t, err)
					require.Equal(t, m.revision, rev, "step %d %s", i, op)
				}
			})
		}
	}
}

func TestStore_SequenceRevisions(t *testing.T) {
	type step struct {
		op      string
		arg     string
		wantTok string
		wantRev int64
	}
	steps := []step{
		{"clear", "", "", 0},
		{"set", "", "", 0},
		{"set", "A", "A", 1},
		{"set", "A", "A", 1},
		{"clearIf", "B", "A", 1},
		{"set", "B", "B", 2},
		{"set", "", "", 3},
		{"clear", "", "", 3},
		{"clearIf", "", "", 3},
		{"set", " ", " ", 4},
		{"clearIf", " ", "", 5},
		{"set", "A", "A", 6},
		{"clear", "", "", 7},
	}

	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)
			for i, st := range steps {
				switch st.op {
				case "set":
					require.NoError(t, s.Set(ctx, st.arg))
				case "clear":
					require.NoError(t, s.Clear(ctx))
				case "clearIf":
					_, err := s.ClearIf(ctx, st.arg)
					require.NoError(t, err)
				}

				tok, _, err := s.Get(ctx)
				require.NoError(t, err)
				assert.Equal(t, st.wantTok, tok, "step %d", i)

				rev, err := s.Revision(ctx)
				require.NoError(t, err)
				assert.Equal(t, st.wantRev, rev, "step %d", i)
			}
		})
	}
}

func TestStore_ConcurrentWritesLastWins(t *testing.T) {
	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			var wg sync.WaitGroup
			for _, tok := range []string{"A", "B", "C", "D"} {
				wg.Add(1)
				go func(tok string) {
					defer wg.Done()
					_ = s.Set(ctx, tok)
				}(tok)
			}
			wg.Wait()

			require.NoError(t, s.Set(ctx, "final"))
			tok, ok, err := s.Get(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "final", tok)
		})
	}
}

func TestSQLiteStore_SharedFileSeesOtherWriter(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "shared.db")

	a, err := repositories.InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer a.Close()
	b, err := repositories.InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer b.Close()

	first := NewSQLiteStore(a.DB)
	second := NewSQLiteStore(b.DB)

	require.NoError(t, first.Set(ctx, "T1"))

	tok, ok, err := second.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "T1", tok)

	rev, err := second.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	require.NoError(t, second.Clear(ctx))
	_, ok, err = first.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_ClosedDatabase(t *testing.T) {
	ctx := context.Background()
	repos, err := repositories.InitDatabase(ctx, filepath.Join(t.TempDir(), "c.db"))
	require.NoError(t, err)
	s := NewSQLiteStore(repos.DB)
	require.NoError(t, repos.Close())

	_, _, err = s.Get(ctx)
	assert.ErrorContains(t, err, "read token")
	assert.Error(t, s.Set(ctx, "T"))
	assert.ErrorContains(t, s.Clear(ctx), "clear token")
	_, err = s.Revision(ctx)
	assert.Error(t, err)
}
