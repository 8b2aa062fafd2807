package rest

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	viewPlay    = "play"
	viewHistory = "history"
)

var choiceIcons = map[entity.Choice]string{
	entity.Rock:     "✊",
	entity.Paper:    "✋",
	entity.Scissors: "✌️",
}

type views struct {
	pages map[string]*template.Template
}

func mustParseViews() *views {
	funcs := template.FuncMap{
		"icon": func(choice entity.Choice) string {
			return choiceIcons[choice]
		},
	}

	pages := make(map[string]*template.Template)
	for _, page := range []string{viewPlay, viewHistory} {
		pages[page] = template.Must(
			template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html"),
		)
	}

	return &views{pages: pages}
}

// render - executes the page into a buffer first so that a failing template never sends a partial page.
func (that *views) render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := that.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)

	return err
}

type playView struct {
	Title      string
	Match      *entity.Match
	Submission *entity.Submission
	Notice     string

	// form values kept when the names are rejected
	Player1Name string
	Player2Name string
}

func (that *playView) Choices() []entity.Choice {
	return entity.Choices
}

func (that *playView) Slots() []entity.Slot {
	return []entity.Slot{entity.Player1, entity.Player2}
}

func (that *playView) RoundsPerMatch() int {
	return entity.RoundsPerMatch
}

// CanChoose - whether the buttons of a player are active.
func (that *playView) CanChoose(slot entity.Slot) bool {
	if !that.Match.IsInProgress() {
		return false
	}

	return !that.Match.IsAlternating() || that.Match.Turn() == slot
}

func (that *playView) HasChosen(slot entity.Slot) bool {
	return that.Match.PendingChoice(slot).IsValid()
}

func (that *playView) Score() map[string]int {
	player1Wins, player2Wins, ties := that.Match.Tally()

	return map[string]int{
		"Player1": player1Wins,
		"Player2": player2Wins,
		"Ties":    ties,
	}
}

func (that *playView) MatchTied() bool {
	return that.Match.IsFinished() && that.Match.Result == entity.OutcomeTie
}

type historyView struct {
	Title  string
	Games  []entity.GameRecord
	Notice string
}
