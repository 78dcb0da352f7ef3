package lesson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CardInfo is a library listing entry, cheap enough to build without
// fully normalizing the card.
type CardInfo struct {
	Week  int
	Title string
	Path  string
}

// Library reads lesson cards from a directory of JSON files.
type Library struct {
	dir string
}

// NewLibrary creates a library over dir.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// DefaultLessonsDir resolves the lessons directory: DURUS_LESSONS env
// var, then ./lessons.
func DefaultLessonsDir() string {
	if d := os.Getenv("DURUS_LESSONS"); d != "" {
		return d
	}
	return "lessons"
}

// List returns the cards in the library sorted by week. Files that are
// not valid JSON objects are skipped; a directory with no usable cards
// is not an error.
func (lib *Library) List() ([]CardInfo, error) {
	entries, err := os.ReadDir(lib.dir)
	if err != nil {
		return nil, fmt.Errorf("read lessons dir: %w", err)
	}

	var cards []CardInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(lib.dir, e.Name())
		info, err := peekCard(path)
		if err != nil {
			continue
		}
		cards = append(cards, info)
	}

	sort.Slice(cards, func(i, j int) bool { return cards[i].Week < cards[j].Week })
	return cards, nil
}

// LoadWeek loads and normalizes the card for the given week number.
func (lib *Library) LoadWeek(week int) (*Lesson, error) {
	cards, err := lib.List()
	if err != nil {
		return nil, err
	}
	for _, c := range cards {
		if c.Week == week {
			return LoadFile(c.Path)
		}
	}
	return nil, fmt.Errorf("no lesson card for week %d", week)
}

// peekCard reads just the week and title from a card file.
func peekCard(path string) (CardInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CardInfo{}, err
	}
	var head struct {
		Week  int    `json:"week"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return CardInfo{}, err
	}
	if head.Title == "" {
		return CardInfo{}, fmt.Errorf("card %s has no title", path)
	}
	return CardInfo{Week: head.Week, Title: head.Title, Path: path}, nil
}
