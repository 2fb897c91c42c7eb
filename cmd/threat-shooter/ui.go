package main

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/input"
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/render"
	"github.com/lixenwraith/threat-shooter/telemetry"
	"github.com/lixenwraith/threat-shooter/user"
)

// modeSetter switches the input machine between play and text entry
type modeSetter interface {
	SetMode(mode input.InputMode)
}

// userTagger receives the id of the user playing the next sessions
type userTagger interface {
	SetUserID(id string)
}

// UI is the menu layer: game-over name prompt, score submission and leaderboard
// Handlers run on the scheduler goroutine together with rendering
type UI struct {
	log      zerolog.Logger
	store    *user.Store
	recorder telemetry.SessionRecorder
	input    modeSetter
	game     userTagger

	state   render.UIState
	summary *event.GameOverPayload

	quit     chan struct{}
	quitOnce sync.Once
}

// NewUI creates the menu layer showing the leaderboard, tagging sessions with the remembered user
func NewUI(store *user.Store, recorder telemetry.SessionRecorder, in modeSetter, game userTagger, log zerolog.Logger) *UI {
	u := &UI{
		log:      log.With().Str("component", "ui").Logger(),
		store:    store,
		recorder: recorder,
		input:    in,
		game:     game,
		quit:     make(chan struct{}),
	}
	if cur, ok := store.Current(); ok {
		game.SetUserID(cur.ID)
		u.state.Name = cur.Name
	}
	if store.Degraded() {
		u.state.Message = "storage unavailable, scores kept for this run only"
	}
	u.refreshLeaderboard()
	return u
}

// EventTypes returns the event types UI handles
func (u *UI) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameStarted,
		event.EventGameOver,
		event.EventTextInput,
		event.EventTextErase,
		event.EventTextSubmit,
		event.EventQuit,
	}
}

// HandleEvent drives the prompt and leaderboard
func (u *UI) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameStarted:
		u.state.Leaderboard = nil
		u.state.Prompting = false
		u.summary = nil
		u.input.SetMode(input.ModePlay)

	case event.EventGameOver:
		if p, ok := ev.Payload.(*event.GameOverPayload); ok {
			u.summary = p
			u.state.Prompting = true
			u.input.SetMode(input.ModeText)
			u.refreshLeaderboard()
		}

	case event.EventTextInput:
		if r, ok := ev.Payload.(rune); ok && u.state.Prompting {
			u.typeRune(r)
		}

	case event.EventTextErase:
		if u.state.Prompting && u.state.Name != "" {
			_, size := utf8.DecodeLastRuneInString(u.state.Name)
			u.state.Name = u.state.Name[:len(u.state.Name)-size]
		}

	case event.EventTextSubmit:
		if u.state.Prompting {
			u.submit()
		}

	case event.EventQuit:
		u.quitOnce.Do(func() { close(u.quit) })
	}
}

func (u *UI) typeRune(r rune) {
	if !unicode.IsPrint(r) || utf8.RuneCountInString(u.state.Name) >= parameter.NameMaxLen {
		return
	}
	u.state.Name += string(r)
}

// submit saves the pending summary under the typed name
func (u *UI) submit() {
	u.state.Prompting = false
	u.input.SetMode(input.ModePlay)

	player := u.store.LoginByName(u.state.Name)
	u.state.Name = player.Name
	u.game.SetUserID(player.ID)

	if s := u.summary; s != nil {
		s.UserID = player.ID
		best := u.store.UpdateScore(user.NewScore(s.Time, s.Kills))
		u.recorder.Record(s)
		u.log.Info().
			Str("user", player.ID).
			Dur("time", s.Time).
			Int("kills", s.Kills).
			Bool("best", best).
			Msg("score submitted")
		u.summary = nil
	}
	u.refreshLeaderboard()
}

func (u *UI) refreshLeaderboard() {
	u.state.Leaderboard = user.Leaderboard(u.store.UniqueByName(), parameter.LeaderboardLimit)
}

// State returns the menu state for rendering
func (u *UI) State() render.UIState {
	return u.state
}

// Quit is closed once the player asks to leave
func (u *UI) Quit() <-chan struct{} {
	return u.quit
}
