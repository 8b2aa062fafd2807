package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/rockpaperscissors/internal/apperror"
	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
)

const (
	titlePlay    = "Rock Paper Scissors"
	titleHistory = "Game History"

	noticeEmptyName      = "Please enter a name for both players."
	noticeHistoryFailure = "Could not load the game history. Please try again later."
)

type matchUseCaseDep interface {
	Current(ctx context.Context, sessionID string) (*entity.Match, error)
	Start(ctx context.Context, sessionID, player1Name, player2Name string) (*entity.Match, error)
	Choose(ctx context.Context, sessionID string, slot entity.Slot, choice entity.Choice) (*entity.Match, error)
	Restart(ctx context.Context, sessionID string) (*entity.Match, error)
	Submission(ctx context.Context, match *entity.Match) *entity.Submission
}

type historyUseCaseDep interface {
	List(ctx context.Context) ([]entity.GameRecord, error)
}

type GameHandlers struct {
	logger *slog.Logger

	match   matchUseCaseDep
	history historyUseCaseDep
	views   *views
}

func NewGameHandlers(logger *slog.Logger, match matchUseCaseDep, history historyUseCaseDep, views *views) *GameHandlers {
	return &GameHandlers{
		logger: logger.With("component", "game_handlers"),

		match:   match,
		history: history,
		views:   views,
	}
}

// Play - renders the view of the current match state.
func (that *GameHandlers) Play(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Play")
	ctx := r.Context()

	match, err := that.match.Current(ctx, session(w, r))
	if err != nil {
		log.Error("failed to get match", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.renderPlay(w, http.StatusOK, &playView{
		Match:      match,
		Submission: that.match.Submission(ctx, match),
	})
}

func (that *GameHandlers) Start(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Start")
	ctx := r.Context()
	sessionID := session(w, r)

	player1Name := r.PostFormValue("player1")
	player2Name := r.PostFormValue("player2")

	match, err := that.match.Start(ctx, sessionID, player1Name, player2Name)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, apperror.ErrEmptyPlayerName):
		that.renderPlay(w, http.StatusUnprocessableEntity, &playView{
			Match:       match,
			Notice:      noticeEmptyName,
			Player1Name: player1Name,
			Player2Name: player2Name,
		})
	case isRejected(err):
		that.renderRejected(w, r, sessionID, err)
	default:
		log.Error("failed to start match", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Choose - records the choice of one player. The round is played once both have chosen.
func (that *GameHandlers) Choose(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Choose")
	ctx := r.Context()
	sessionID := session(w, r)

	slot, err := entity.ParseSlot(r.PostFormValue("player"))
	if err != nil {
		that.renderRejected(w, r, sessionID, err)
		return
	}

	choice, err := entity.ParseChoice(r.PostFormValue("choice"))
	if err != nil {
		that.renderRejected(w, r, sessionID, err)
		return
	}

	_, err = that.match.Choose(ctx, sessionID, slot, choice)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case isRejected(err):
		that.renderRejected(w, r, sessionID, err)
	default:
		log.Error("failed to record choice", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *GameHandlers) Restart(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Restart")

	if _, err := that.match.Restart(r.Context(), session(w, r)); err != nil {
		log.Error("failed to restart match", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// History - renders the completed games. A backend failure is shown to the user instead of an empty table.
func (that *GameHandlers) History(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "History")

	games, err := that.history.List(r.Context())
	if err != nil {
		log.Warn("game history unavailable", "error", err)

		that.render(w, http.StatusBadGateway, viewHistory, &historyView{
			Title:  titleHistory,
			Notice: noticeHistoryFailure,
		})
		return
	}

	that.render(w, http.StatusOK, viewHistory, &historyView{
		Title: titleHistory,
		Games: games,
	})
}

// renderRejected - shows the current match with the reason the action was refused.
func (that *GameHandlers) renderRejected(w http.ResponseWriter, r *http.Request, sessionID string, reason error) {
	log := that.logger.With("method", "renderRejected")
	ctx := r.Context()

	match, err := that.match.Current(ctx, sessionID)
	if err != nil {
		log.Error("failed to get match", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.renderPlay(w, http.StatusUnprocessableEntity, &playView{
		Match:      match,
		Submission: that.match.Submission(ctx, match),
		Notice:     notice(reason),
	})
}

func (that *GameHandlers) renderPlay(w http.ResponseWriter, status int, view *playView) {
	view.Title = titlePlay
	that.render(w, status, viewPlay, view)
}

func (that *GameHandlers) render(w http.ResponseWriter, status int, page string, data any) {
	if err := that.views.render(w, status, page, data); err != nil {
		that.logger.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

var rejections = []error{
	apperror.ErrEmptyPlayerName,
	apperror.ErrMatchNotStarted,
	apperror.ErrMatchAlreadyStarted,
	apperror.ErrMatchFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrInvalidChoice,
	apperror.ErrInvalidPlayer,
	apperror.ErrChoicesMissing,
}

// isRejected - reports whether err is caused by the player's input rather than by the system.
func isRejected(err error) bool {
	for _, rejection := range rejections {
		if errors.Is(err, rejection) {
			return true
		}
	}

	return false
}

func notice(err error) string {
	switch {
	case errors.Is(err, apperror.ErrEmptyPlayerName):
		return noticeEmptyName
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Player 1 must choose first."
	case errors.Is(err, apperror.ErrMatchFinished):
		return "The game is over. Restart to play again."
	case errors.Is(err, apperror.ErrMatchNotStarted):
		return "Enter both player names to start the game."
	case errors.Is(err, apperror.ErrMatchAlreadyStarted):
		return "A game is already in progress."
	case errors.Is(err, apperror.ErrInvalidChoice), errors.Is(err, apperror.ErrInvalidPlayer):
		return "That choice is not allowed."
	default:
		return "That action is not allowed right now."
	}
}
