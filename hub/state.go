// Package hub holds the root state of the activity hub that hosts the
// drawing surface: which page is showing, which mini-game is open, the
// one-time greeting and whether the canvas is fullscreen.
//
// State is a plain value mutated through methods, one per user action.
// Hosts render from it; nothing here draws.
package hub

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Page is a top-level navigation tab.
type Page string

const (
	PageHome      Page = "home"
	PageGames     Page = "games"
	PagePokemon   Page = "pokemon"
	PageHotWheels Page = "hotwheels"
	PageEmulator  Page = "emulator"
)

// Pages lists the tabs in navigation order.
var Pages = []Page{PageHome, PageGames, PagePokemon, PageHotWheels, PageEmulator}

// Game is a mini-game on the games page.
type Game string

const (
	GameTapPop     Game = "tappop"
	GameColorMatch Game = "colormatch"
	GameShapeHunt  Game = "shapehunt"
	GamePattern    Game = "pattern"
	GameBubblePop  Game = "bubblepop"
)

// Games lists the mini-games in menu order.
var Games = []Game{GameTapPop, GameColorMatch, GameShapeHunt, GamePattern, GameBubblePop}

// GreetingDuration is how long the greeting stays up unless dismissed.
const GreetingDuration = 4 * time.Second

var (
	// ErrUnknownPage is returned when navigating to a page that does not exist.
	ErrUnknownPage = errors.New("hub: unknown page")

	// ErrUnknownGame is returned when selecting a game that does not exist.
	ErrUnknownGame = errors.New("hub: unknown game")

	// ErrNotOnGames is returned when selecting a game away from the games page.
	ErrNotOnGames = errors.New("hub: games can only be opened from the games page")
)

// State is the root application state for one session.
type State struct {
	// Session identifies this run; the greeting is shown once per session.
	Session uuid.UUID

	page Page
	game Game

	greetingShown bool
	greetingUntil time.Time

	fullscreen bool
}

// New starts a session on the home page at now. The greeting shows.
func New(now time.Time) *State {
	s := &State{Session: uuid.New()}
	s.enter(PageHome, now)
	return s
}

// Page returns the current tab.
func (s *State) Page() Page { return s.page }

// Game returns the open mini-game, or "" when the game list is showing.
func (s *State) Game() Game { return s.game }

// Fullscreen reports whether the drawing canvas is fullscreen.
func (s *State) Fullscreen() bool { return s.fullscreen }

// ParsePage returns the page with the given name.
func ParsePage(name string) (Page, error) {
	for _, p := range Pages {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPage, name)
}

// Navigate switches tabs. Leaving the games page closes any open game.
// Unknown pages leave the state untouched.
func (s *State) Navigate(p Page, now time.Time) error {
	if _, err := ParsePage(string(p)); err != nil {
		return err
	}
	s.enter(p, now)
	return nil
}

func (s *State) enter(p Page, now time.Time) {
	if p != s.page {
		s.game = ""
	}
	s.page = p
	if p == PageHome && !s.greetingShown {
		s.greetingShown = true
		s.greetingUntil = now.Add(GreetingDuration)
	}
}

// SelectGame opens g from the games list.
func (s *State) SelectGame(g Game) error {
	if s.page != PageGames {
		return ErrNotOnGames
	}
	for _, known := range Games {
		if known == g {
			s.game = g
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownGame, g)
}

// Back returns from an open game to the game list.
func (s *State) Back() {
	s.game = ""
}

// GreetingVisible reports whether the greeting is showing at now.
func (s *State) GreetingVisible(now time.Time) bool {
	return s.page == PageHome && now.Before(s.greetingUntil)
}

// DismissGreeting hides the greeting for the rest of the session.
func (s *State) DismissGreeting() {
	s.greetingUntil = time.Time{}
}

// SetFullscreen enters or leaves the fullscreen canvas.
func (s *State) SetFullscreen(on bool) {
	s.fullscreen = on
}

// Windowed canvas bounds.
const (
	CanvasMaxWidth = 700
	CanvasHeight   = 400
	CanvasMargin   = 40
)

// CanvasSize returns the drawing canvas size for a viewport. Fullscreen
// fills the viewport; otherwise the canvas is at most 700 wide with a
// margin, and 400 tall. Both dimensions are at least 1.
func (s *State) CanvasSize(viewW, viewH int) (width, height int) {
	if s.fullscreen {
		return max(viewW, 1), max(viewH, 1)
	}
	return max(min(CanvasMaxWidth, viewW-CanvasMargin), 1), CanvasHeight
}
