// Package trainer contains the Bubble Tea model for a training session.
package trainer

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Deetschoe/monkeycmd/internal/challenge"
	"github.com/Deetschoe/monkeycmd/internal/command"
	"github.com/Deetschoe/monkeycmd/internal/config"
	"github.com/Deetschoe/monkeycmd/internal/editor"
	"github.com/Deetschoe/monkeycmd/internal/game"
	"github.com/Deetschoe/monkeycmd/internal/log"
	"github.com/Deetschoe/monkeycmd/internal/ui/styles"
)

// Phase is the trainer's top-level UI state.
type Phase int

const (
	// PhasePlaying is an active round: the user edits toward the target.
	PhasePlaying Phase = iota
	// PhaseFail shows what went wrong after a missed round.
	PhaseFail
	// PhaseSummary shows session totals after the timer finishes.
	PhaseSummary
)

const tickInterval = 250 * time.Millisecond

// tickMsg drives the countdown timer.
type tickMsg time.Time

// ReloadMsg carries a freshly loaded config after the file changed on
// disk. Theme changes apply immediately; duration applies next session.
type ReloadMsg struct {
	Cfg config.Config
}

// Model is the Bubble Tea model for a training session.
type Model struct {
	cfg   config.Config
	os    command.OS
	keys  KeyMap
	gen   *challenge.Generator
	texts []string
	ids   []command.ID

	timer *game.Timer
	score game.Score
	repo  game.RunRepository // nil disables persistence

	phase      Phase
	current    *challenge.Challenge
	state      editor.State
	lastResult *challenge.Result
	flash      string

	best    *game.Run
	saveErr error

	width  int
	height int

	now func() time.Time
}

// New creates a trainer model for the given platform and command set.
// repo may be nil to run without score persistence.
func New(cfg config.Config, os command.OS, ids []command.ID, repo game.RunRepository) (*Model, error) {
	m := &Model{
		cfg:   cfg,
		os:    os,
		keys:  DefaultKeyMap(),
		gen:   challenge.NewGenerator(),
		texts: challenge.SampleTexts(),
		ids:   ids,
		timer: game.NewTimer(cfg.SessionDuration(), nil),
		repo:  repo,
		now:   time.Now,
	}

	if err := m.nextChallenge(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		snap := m.timer.Tick(time.Time(msg))
		if snap.Phase == game.TimerFinished && m.phase != PhaseSummary {
			m.finishSession()
			return m, nil
		}
		if m.phase == PhaseSummary {
			return m, nil
		}
		return m, tickCmd()

	case ReloadMsg:
		m.applyReload(msg.Cfg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.phase {
	case PhaseSummary:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Restart) {
			return m, m.restart()
		}
		return m, nil

	case PhaseFail:
		if key.Matches(msg, m.keys.Continue) {
			m.phase = PhasePlaying
			if err := m.nextChallenge(); err != nil {
				m.saveErr = err
			}
		}
		return m, nil

	default:
		return m.handlePlayingKey(msg)
	}
}

func (m *Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Skip) {
		m.score.RecordSkip()
		m.flash = ""
		if err := m.nextChallenge(); err != nil {
			m.saveErr = err
		}
		return m, nil
	}

	// The session clock starts on the first real keystroke, not on
	// program launch.
	if m.timer.Phase() == game.TimerIdle {
		m.timer.Start(m.now())
	}

	press := translateKey(msg)
	res := command.Dispatch(m.os, press, m.state)
	if !res.Handled {
		log.Debug(log.CatDispatch, "key passed through", "key", press.Key)
		return m, nil
	}
	m.state = res.State

	// Rounds are settled by table commands only; plain edits and
	// movement just reshape the buffer (and usually dig the hole
	// deeper).
	if res.Command == nil {
		return m, nil
	}

	result := challenge.Validate(m.current, m.state)
	if result.Success {
		m.score.RecordRound(true)
		m.flash = res.Command.Name
		log.Debug(log.CatGame, "round passed", "command", res.Command.ID, "streak", m.score.Streak)
		if err := m.nextChallenge(); err != nil {
			m.saveErr = err
		}
		return m, nil
	}

	m.score.RecordRound(false)
	m.lastResult = &result
	m.flash = ""
	m.phase = PhaseFail
	log.Debug(log.CatGame, "round failed", "wanted", m.current.Command.ID, "pressed", res.Command.ID)
	return m, nil
}

// nextChallenge replaces the current challenge and resets the buffer.
func (m *Model) nextChallenge() error {
	ch, err := m.gen.Pick(m.texts, m.ids, m.os)
	if err != nil {
		return err
	}
	m.current = ch
	m.state = ch.Start
	m.lastResult = nil
	return nil
}

// finishSession closes out the run, persists it, and shows the summary.
func (m *Model) finishSession() {
	m.phase = PhaseSummary
	m.flash = ""
	log.Info(log.CatUI, "session finished",
		"attempted", m.score.Attempted, "correct", m.score.Correct)

	if m.repo == nil {
		return
	}

	run := game.NewRun(string(m.os), m.score, m.timer.Duration(), m.now())
	if err := m.repo.Save(run); err != nil {
		log.ErrorErr(log.CatDB, "failed to save run", err)
		m.saveErr = err
		return
	}

	best, err := m.repo.Best(string(m.os))
	if err != nil {
		var notFound *game.RunNotFoundError
		if !errors.As(err, &notFound) {
			log.ErrorErr(log.CatDB, "failed to load best run", err)
		}
		return
	}
	m.best = best
}

// restart begins a fresh session with the same settings.
func (m *Model) restart() tea.Cmd {
	m.timer = game.NewTimer(m.cfg.SessionDuration(), nil)
	m.score = game.Score{}
	m.phase = PhasePlaying
	m.flash = ""
	m.best = nil
	m.saveErr = nil
	if err := m.nextChallenge(); err != nil {
		m.saveErr = err
	}
	return tickCmd()
}

// applyReload folds an edited config file into the running session.
func (m *Model) applyReload(cfg config.Config) {
	styles.ApplyTheme(
		cfg.Theme.Highlight, cfg.Theme.Subtle,
		cfg.Theme.Error, cfg.Theme.Success,
		cfg.Theme.Cursor, cfg.Theme.Selection,
	)

	if ids, err := cfg.EnabledCommands(); err == nil {
		m.ids = ids
	}

	// Duration changes take effect on the next restart; swapping the
	// timer mid-session would corrupt the countdown.
	m.cfg = cfg
	log.Info(log.CatConfig, "config reloaded")
}

// Score returns the running session score.
func (m *Model) Score() game.Score { return m.score }

// Phase returns the current UI phase.
func (m *Model) Phase() Phase { return m.phase }
