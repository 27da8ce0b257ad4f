package config

import (
	"fmt"
	"os"

	"github.com/liyu-xiangqi/xiangqi/internal/board"
)

// SaveGame saves the given position to ~/.xiangqi/savegame.fen as a FEN
// string, creating the config directory if necessary.
func SaveGame(b *board.Board) error {
	savePath, err := SaveGamePath()
	if err != nil {
		return fmt.Errorf("failed to get save game path: %w", err)
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	fen := b.WriteFEN()

	if err := os.WriteFile(savePath, []byte(fen), 0644); err != nil {
		return fmt.Errorf("failed to write save game file: %w", err)
	}

	return nil
}

// LoadGame loads the position saved at ~/.xiangqi/savegame.fen.
func LoadGame() (*board.Board, error) {
	savePath, err := SaveGamePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get save game path: %w", err)
	}

	data, err := os.ReadFile(savePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read save game file: %w", err)
	}

	b, err := board.BoardFromFEN(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse saved position FEN: %w", err)
	}

	return b, nil
}

// DeleteSaveGame deletes the saved position file, if any. A missing
// file is not an error.
func DeleteSaveGame() error {
	savePath, err := SaveGamePath()
	if err != nil {
		return fmt.Errorf("failed to get save game path: %w", err)
	}

	if _, err := os.Stat(savePath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(savePath); err != nil {
		return fmt.Errorf("failed to delete save game file: %w", err)
	}

	return nil
}

// SaveGameExists reports whether a saved position file exists.
func SaveGameExists() bool {
	savePath, err := SaveGamePath()
	if err != nil {
		return false
	}

	_, err = os.Stat(savePath)
	return err == nil
}
