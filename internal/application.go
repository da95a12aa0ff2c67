package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/othello-backend/internal/config"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
	"github.com/rocketscienceinc/othello-backend/internal/repository"
	"github.com/rocketscienceinc/othello-backend/internal/transcript"
	"github.com/rocketscienceinc/othello-backend/internal/usecase"
)

var ErrTranscriptNotSet = errors.New("transcript path is empty")

// Summary is the final state written after a replay.
type Summary struct {
	Game     *entity.Game  `json:"game"`
	White    int           `json:"white"`
	Black    int           `json:"black"`
	Finished bool          `json:"finished"`
	Winner   *othello.Side `json:"winner,omitempty"`
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if conf.TranscriptPath == "" {
		return ErrTranscriptNotSet
	}

	firstSide, err := othello.ParseSide(conf.FirstSide)
	if err != nil {
		return fmt.Errorf("invalid first side: %w", err)
	}

	file, err := os.Open(conf.TranscriptPath)
	if err != nil {
		return fmt.Errorf("could not open transcript: %w", err)
	}
	defer file.Close()

	commands, err := transcript.Parse(file)
	if err != nil {
		return fmt.Errorf("could not parse transcript: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, repository.NewGameRepository())

	summary, err := Replay(ctx, gameManager, firstSide, commands)
	if err != nil {
		return err
	}

	log.Info("Replay finished", "gameID", summary.Game.ID, "commands", len(commands),
		"white", summary.White, "black", summary.Black, "finished", summary.Finished)

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(summary); err != nil {
		return fmt.Errorf("could not write summary: %w", err)
	}

	return nil
}

// Replay - plays commands through a fresh session and returns its final state.
func Replay(ctx context.Context, gameManager *usecase.GameManager, firstSide othello.Side, commands []transcript.Command) (*Summary, error) {
	game, err := gameManager.CreateGame(ctx, firstSide)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	for _, cmd := range commands {
		switch cmd.Kind {
		case transcript.KindPlace:
			game, err = gameManager.PlaceDisc(ctx, game.ID, cmd.Coord)
		case transcript.KindSkip:
			game, err = gameManager.Skip(ctx, game.ID)
		case transcript.KindRevert:
			game, err = gameManager.RevertTo(ctx, game.ID, cmd.Index)
		default:
			err = fmt.Errorf("%w: %s", transcript.ErrInvalidCommand, cmd.Kind)
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", cmd.Line, err)
		}
	}

	white, black := game.Score()
	summary := &Summary{
		Game:  game,
		White: white,
		Black: black,
	}

	if winner, finished := game.DetermineResult(); finished {
		summary.Finished = true
		if winner.Valid() {
			summary.Winner = &winner
		}
	}

	return summary, nil
}
