// Package library scans the user's sound folder into playable entries.
package library

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"soundbox/internal/domain"
)

// Extensions lists the recognized sound file extensions.
var Extensions = []string{".mp3", ".wav", ".ogg", ".flac"}

type entry struct {
	sound   domain.Sound
	file    string
	modTime time.Time
}

// Scan lists the playable sounds in dir, newest first. Display names
// drop the extension; when two files share a base name the one first in
// filename order keeps the bare name and later ones keep the extension.
// A missing or unreadable directory yields an empty list.
func Scan(dir string) []domain.Sound {
	if dir == "" {
		return nil
	}

	items, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("[library] could not read sound folder", "dir", dir, "error", err)
		return nil
	}

	var entries []entry
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		if !recognized(item.Name()) {
			continue
		}
		info, err := item.Info()
		if err != nil {
			continue
		}
		entries = append(entries, entry{
			sound:   domain.Sound{Path: filepath.Join(dir, item.Name())},
			file:    item.Name(),
			modTime: info.ModTime(),
		})
	}

	// Filename order makes display-name assignment deterministic.
	sort.Slice(entries, func(i, j int) bool { return entries[i].file < entries[j].file })

	taken := make(map[string]bool, len(entries))
	for i := range entries {
		name := strings.TrimSuffix(entries[i].file, filepath.Ext(entries[i].file))
		if taken[name] {
			name = entries[i].file
		}
		taken[name] = true
		entries[i].sound.Name = name
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].modTime.After(entries[j].modTime)
	})

	sounds := make([]domain.Sound, len(entries))
	for i, e := range entries {
		sounds[i] = e.sound
	}
	return sounds
}

// Filter returns the sounds whose display name contains query,
// case-insensitively. An empty query returns the input unchanged.
func Filter(sounds []domain.Sound, query string) []domain.Sound {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return sounds
	}
	needle := strings.ToLower(trimmed)

	matched := make([]domain.Sound, 0, len(sounds))
	for _, s := range sounds {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			matched = append(matched, s)
		}
	}
	return matched
}

func recognized(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	for _, known := range Extensions {
		if ext == known {
			return true
		}
	}
	return false
}
