package application

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/config"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
	"github.com/rocketscienceinc/othello-backend/internal/repository"
	"github.com/rocketscienceinc/othello-backend/internal/transcript"
	"github.com/rocketscienceinc/othello-backend/internal/usecase"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTranscript(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "moves.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReplay(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies placements, skips and reverts in order", func(t *testing.T) {
		// Given: a manager and a transcript that reverts a black reply
		gameManager := usecase.NewGameManager(newTestLogger(), repository.NewGameRepository())
		commands := []transcript.Command{
			{Kind: transcript.KindPlace, Coord: othello.Coord{Row: 5, Col: 3}, Line: 1},
			{Kind: transcript.KindPlace, Coord: othello.Coord{Row: 6, Col: 3}, Line: 2},
			{Kind: transcript.KindRevert, Index: 1, Line: 3},
			{Kind: transcript.KindSkip, Line: 4},
		}

		// When: replaying
		summary, err := Replay(ctx, gameManager, othello.WhiteSide, commands)

		// Then: one placement and one skip remain
		require.NoError(t, err)
		require.Len(t, summary.Game.History, 3)
		assert.True(t, summary.Game.History[2].Skip)
		assert.Equal(t, othello.WhiteSide, summary.Game.CurrentSide())
		assert.Equal(t, 4, summary.White)
		assert.Equal(t, 1, summary.Black)
		assert.False(t, summary.Finished)
		assert.Nil(t, summary.Winner)
	})

	t.Run("Stops at an invalid revert", func(t *testing.T) {
		gameManager := usecase.NewGameManager(newTestLogger(), repository.NewGameRepository())
		commands := []transcript.Command{
			{Kind: transcript.KindRevert, Index: 5, Line: 7},
		}

		summary, err := Replay(ctx, gameManager, othello.BlackSide, commands)

		require.ErrorIs(t, err, apperror.ErrInvalidHistoryIndex)
		assert.Contains(t, err.Error(), "line 7")
		assert.Nil(t, summary)
	})
}

func TestRunApp(t *testing.T) {
	t.Run("Writes the final game as JSON", func(t *testing.T) {
		// Given: a transcript with a single white move
		conf := &config.Config{
			LogLevel:       "info",
			FirstSide:      "white",
			TranscriptPath: writeTranscript(t, "place 5 3\n"),
		}
		var out bytes.Buffer

		// When: running the app
		err := RunApp(newTestLogger(), conf, &out)

		// Then: the summary reflects the move
		require.NoError(t, err)

		var summary struct {
			Game struct {
				Turn    string            `json:"turn"`
				History []json.RawMessage `json:"history"`
			} `json:"game"`
			White int `json:"white"`
			Black int `json:"black"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
		assert.Equal(t, "black", summary.Game.Turn)
		assert.Len(t, summary.Game.History, 2)
		assert.Equal(t, 4, summary.White)
		assert.Equal(t, 1, summary.Black)
	})

	t.Run("Returns ErrTranscriptNotSet without a path", func(t *testing.T) {
		conf := &config.Config{FirstSide: "white"}

		err := RunApp(newTestLogger(), conf, io.Discard)

		require.ErrorIs(t, err, ErrTranscriptNotSet)
	})

	t.Run("Returns ErrInvalidSide for an unknown first side", func(t *testing.T) {
		conf := &config.Config{FirstSide: "green", TranscriptPath: writeTranscript(t, "skip\n")}

		err := RunApp(newTestLogger(), conf, io.Discard)

		require.ErrorIs(t, err, apperror.ErrInvalidSide)
	})

	t.Run("Returns ErrInvalidCommand for a malformed transcript", func(t *testing.T) {
		conf := &config.Config{FirstSide: "white", TranscriptPath: writeTranscript(t, "fly 1 2\n")}

		err := RunApp(newTestLogger(), conf, io.Discard)

		require.ErrorIs(t, err, transcript.ErrInvalidCommand)
	})
}
