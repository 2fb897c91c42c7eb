package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/input"
	"github.com/lixenwraith/threat-shooter/user"
)

type fakeInput struct{ mode input.InputMode }

func (f *fakeInput) SetMode(m input.InputMode) { f.mode = m }

type fakeGame struct{ userID string }

func (f *fakeGame) SetUserID(id string) { f.userID = id }

type captureRecorder struct{ sessions []*event.GameOverPayload }

func (r *captureRecorder) Record(s *event.GameOverPayload) { r.sessions = append(r.sessions, s) }
func (r *captureRecorder) Close()                          {}

type uiFixture struct {
	ui    *UI
	store *user.Store
	in    *fakeInput
	game  *fakeGame
	rec   *captureRecorder
}

func newUIFixture(t *testing.T) *uiFixture {
	t.Helper()
	store := user.NewStore(user.NewMemoryBackend(), zerolog.Nop())
	require.NoError(t, store.Load())
	f := &uiFixture{store: store, in: &fakeInput{}, game: &fakeGame{}, rec: &captureRecorder{}}
	f.ui = NewUI(store, f.rec, f.in, f.game, zerolog.Nop())
	return f
}

func (f *uiFixture) send(typ event.EventType, payload any) {
	f.ui.HandleEvent(event.GameEvent{Type: typ, Payload: payload})
}

func (f *uiFixture) typeName(name string) {
	for _, r := range name {
		f.send(event.EventTextInput, r)
	}
}

func TestUI_GameOverPromptAndSubmit(t *testing.T) {
	f := newUIFixture(t)
	assert.NotNil(t, f.ui.State().Leaderboard, "idle screen shows the leaderboard")

	f.send(event.EventGameStarted, nil)
	assert.Nil(t, f.ui.State().Leaderboard)

	summary := &event.GameOverPayload{Time: 42 * time.Second, Kills: 9, Difficulty: 1, Speed: 4}
	f.send(event.EventGameOver, summary)
	assert.True(t, f.ui.State().Prompting)
	assert.Equal(t, input.ModeText, f.in.mode)

	f.typeName("neoo")
	f.send(event.EventTextErase, nil)
	assert.Equal(t, "neo", f.ui.State().Name)

	f.send(event.EventTextSubmit, nil)
	st := f.ui.State()
	assert.False(t, st.Prompting)
	assert.Equal(t, input.ModePlay, f.in.mode)

	cur, ok := f.store.Current()
	require.True(t, ok)
	assert.Equal(t, "neo", cur.Name)
	require.NotNil(t, cur.BestScore)
	assert.Equal(t, int64(42000), cur.BestScore.Time)
	assert.Equal(t, cur.ID, f.game.userID)

	require.Len(t, f.rec.sessions, 1)
	assert.Equal(t, cur.ID, f.rec.sessions[0].UserID)

	require.Len(t, st.Leaderboard, 1)
	assert.Equal(t, "neo", st.Leaderboard[0].Name)
	assert.Equal(t, "0:42.0", st.Leaderboard[0].Time)
}

func TestUI_WorseScoreKeepsBest(t *testing.T) {
	f := newUIFixture(t)

	f.send(event.EventGameOver, &event.GameOverPayload{Time: 30 * time.Second})
	f.typeName("trinity")
	f.send(event.EventTextSubmit, nil)

	// The prompt keeps the last name
	f.send(event.EventGameOver, &event.GameOverPayload{Time: 50 * time.Second})
	assert.Equal(t, "trinity", f.ui.State().Name)
	f.send(event.EventTextSubmit, nil)

	cur, _ := f.store.Current()
	assert.Equal(t, int64(30000), cur.BestScore.Time)
	assert.Equal(t, 1, f.store.Len(), "same name reuses the user")
	assert.Len(t, f.rec.sessions, 2)
}

func TestUI_RemembersCurrentUser(t *testing.T) {
	store := user.NewStore(user.NewMemoryBackend(), zerolog.Nop())
	require.NoError(t, store.Load())
	u := store.NewUser("morpheus")

	game := &fakeGame{}
	ui := NewUI(store, &captureRecorder{}, &fakeInput{}, game, zerolog.Nop())
	assert.Equal(t, u.ID, game.userID)
	assert.Equal(t, "morpheus", ui.State().Name)
}

func TestUI_BlankNameAndLimits(t *testing.T) {
	f := newUIFixture(t)
	f.send(event.EventGameOver, &event.GameOverPayload{Time: time.Second})

	f.send(event.EventTextInput, '\x07')
	assert.Empty(t, f.ui.State().Name, "control characters are ignored")

	f.send(event.EventTextSubmit, nil)
	cur, ok := f.store.Current()
	require.True(t, ok)
	assert.Equal(t, "Player", cur.Name)

	f.send(event.EventGameOver, &event.GameOverPayload{Time: time.Second})
	f.typeName("abcdefghijklmnopqrstuvwxyz")
	assert.Len(t, []rune(f.ui.State().Name), 16)
}

func TestUI_TextIgnoredOutsidePrompt(t *testing.T) {
	f := newUIFixture(t)
	f.send(event.EventGameStarted, nil)
	f.typeName("x")
	f.send(event.EventTextSubmit, nil)
	assert.Equal(t, 0, f.store.Len())
}

func TestUI_QuitClosesOnce(t *testing.T) {
	f := newUIFixture(t)
	f.send(event.EventQuit, nil)
	f.send(event.EventQuit, nil)

	select {
	case <-f.ui.Quit():
	default:
		t.Fatal("quit channel not closed")
	}
}
