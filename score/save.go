package score

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScoreFile is the on-disk form of a saved score.
type ScoreFile struct {
	Name     string `json:"name"`
	TempoBPM int    `json:"tempo"`
	Measures int    `json:"measures"`
	Notes    []Note `json:"notes"`
}

// scoresDir is swappable so tests can point saves at a temp directory.
var scoresDir = defaultScoresDir

func defaultScoresDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fiveline", "scores"), nil
}

func scorePath(name string) (string, error) {
	// A name is a file name, never a path: anything with a separator
	// would escape the scores directory.
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid score name %q", name)
	}
	dir, err := scoresDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+".json"), nil
}

// SaveScore writes the editor's current notes under the given name.
func SaveScore(name string, e *Editor) error {
	path, err := scorePath(name)
	if err != nil {
		return err
	}

	dir, err := scoresDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sf := ScoreFile{
		Name:     name,
		TempoBPM: e.Tempo(),
		Measures: e.Grid().Measures,
		Notes:    e.Notes(),
	}
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadScore reads a saved score by name.
func LoadScore(name string) (*ScoreFile, error) {
	path, err := scorePath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf ScoreFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("score %q: %w", name, err)
	}
	return &sf, nil
}

// ListScores returns saved score names, sorted.
func ListScores() ([]string, error) {
	dir, err := scoresDir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
