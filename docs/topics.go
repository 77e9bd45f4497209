// Package docs embeds the help topics shown by the `fin topic` command.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Topic returns the markdown content of one help topic. The name "*" expands
// to every topic concatenated in alphabetical order.
func Topic(name string) (string, error) {
	if name == "*" {
		var b bytes.Buffer
		for _, t := range List() {
			content, err := Topic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// List returns the names of every help topic, sorted. The readme is an index,
// not a topic.
func List() []string {
	var names []string
	fs.WalkDir(topics, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if name != "readme" {
			names = append(names, name)
		}
		return nil
	})
	sort.Strings(names)
	return names
}

// Index returns the readme listing every topic with a one-line summary.
func Index() string {
	content, err := topics.ReadFile("readme.md")
	if err != nil {
		return ""
	}
	return string(content)
}
