package user

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(NewMemoryBackend(), zerolog.Nop())
	require.NoError(t, s.Load())
	return s
}

func TestScore_LowerTimeWins(t *testing.T) {
	a := Score{Time: 10, Kills: 5}
	b := Score{Time: 8, Kills: 1}
	assert.True(t, b.Better(a))
	assert.False(t, a.Better(b))
	assert.False(t, a.Better(a), "ties are not better")
}

func TestStore_RankingOrder(t *testing.T) {
	s := newTestStore(t)

	s.NewUser("alice")
	s.UpdateScore(Score{Time: 10, Kills: 5})
	s.NewUser("bob")
	s.UpdateScore(Score{Time: 8, Kills: 1})
	s.NewUser("carol")

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"bob", "alice", "carol"}, []string{all[0].Name, all[1].Name, all[2].Name})
	assert.Nil(t, all[2].BestScore)
}

func TestStore_UpdateScoreStrictlyBetter(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.UpdateScore(Score{Time: 1}), "no current user")

	s.NewUser("alice")
	assert.True(t, s.UpdateScore(Score{Time: 10, Kills: 5}))
	assert.False(t, s.UpdateScore(Score{Time: 10, Kills: 50}))
	assert.False(t, s.UpdateScore(Score{Time: 12, Kills: 50}))
	assert.True(t, s.UpdateScore(Score{Time: 9, Kills: 0}))

	u, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, &Score{Time: 9, Kills: 0}, u.BestScore)
}

func TestStore_IDsAndNames(t *testing.T) {
	s := newTestStore(t)
	a := s.NewUser("  ")
	b := s.NewUser("bob")
	assert.Equal(t, "u0", a.ID)
	assert.Equal(t, "Player", a.Name)
	assert.Equal(t, "u1", b.ID)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "u1", cur.ID)

	require.NoError(t, s.Login("u0"))
	cur, _ = s.Current()
	assert.Equal(t, "u0", cur.ID)

	err := s.Login("u9")
	assert.True(t, errors.Is(err, ErrUnknownUser))
}

func TestStore_LoginByName(t *testing.T) {
	s := newTestStore(t)
	first := s.LoginByName("alice")
	s.LoginByName("bob")
	again := s.LoginByName("alice")

	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 2, s.Len())
	cur, _ := s.Current()
	assert.Equal(t, first.ID, cur.ID)

	_, ok := s.FindByName("nobody")
	assert.False(t, ok)
}

func TestStore_UniqueByName(t *testing.T) {
	s := newTestStore(t)
	s.NewUser("alice")
	s.UpdateScore(Score{Time: 30})
	s.NewUser("bob")
	s.UpdateScore(Score{Time: 20})
	s.NewUser("alice")
	s.UpdateScore(Score{Time: 10})
	s.NewUser("carol")

	unique := s.UniqueByName()
	require.Len(t, unique, 3)
	assert.Equal(t, "alice", unique[0].Name)
	assert.Equal(t, int64(10), unique[0].BestScore.Time)
	assert.Equal(t, "bob", unique[1].Name)
	assert.Equal(t, "carol", unique[2].Name)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := newTestStore(t)
	s.NewUser("alice")
	s.UpdateScore(Score{Time: 10})

	u, _ := s.Current()
	u.BestScore.Time = 1
	u.Name = "mallory"

	again, _ := s.Current()
	assert.Equal(t, int64(10), again.BestScore.Time)
	assert.Equal(t, "alice", again.Name)
}

func TestStore_ReloadRestoresState(t *testing.T) {
	backend := NewMemoryBackend()
	s := NewStore(backend, zerolog.Nop())
	require.NoError(t, s.Load())
	s.NewUser("alice")
	s.UpdateScore(NewScore(42*time.Second, 7))
	s.NewUser("bob")
	require.NoError(t, s.Login("u0"))

	reloaded := NewStore(backend, zerolog.Nop())
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 2, reloaded.Len())
	cur, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", cur.Name)
	assert.Equal(t, 42*time.Second, cur.BestScore.Duration())

	assert.Equal(t, "u2", reloaded.NewUser("carol").ID)
}

type failingBackend struct {
	loadErr, saveErr error
	saves            int
}

func (f *failingBackend) Load() (*Document, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return &Document{}, nil
}

func (f *failingBackend) Save(*Document) error {
	f.saves++
	return f.saveErr
}

func (f *failingBackend) Close() error { return nil }

func TestStore_DegradesOnLoadFailure(t *testing.T) {
	s := NewStore(&failingBackend{loadErr: errors.New("disk gone")}, zerolog.Nop())
	assert.Error(t, s.Load())
	assert.True(t, s.Degraded())

	u := s.NewUser("alice")
	assert.Equal(t, "u0", u.ID)
	assert.True(t, s.UpdateScore(Score{Time: 5}))
}

func TestStore_DegradesOnSaveFailure(t *testing.T) {
	fb := &failingBackend{saveErr: errors.New("read-only")}
	s := NewStore(fb, zerolog.Nop())
	require.NoError(t, s.Load())

	s.NewUser("alice")
	assert.True(t, s.Degraded())
	assert.Equal(t, 1, fb.saves)

	s.NewUser("bob")
	assert.Equal(t, 1, fb.saves, "failed backend is no longer used")
	assert.Equal(t, 2, s.Len())
}

func TestLeaderboard_Rows(t *testing.T) {
	users := []User{
		{ID: "u1", Name: "bob", BestScore: &Score{Time: 65500, Kills: 3}},
		{ID: "u0", Name: "alice"},
		{ID: "u2", Name: "carol", BestScore: &Score{Time: 1000, Kills: 0}},
	}
	rows := Leaderboard(users, 2)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Rank: "1", Name: "bob", Time: "1:05.5", Kills: "3"}, rows[0])
	assert.Equal(t, Row{Rank: "2", Name: "alice", Time: "-", Kills: "-"}, rows[1])

	assert.Len(t, Leaderboard(users, 0), 3)
}
