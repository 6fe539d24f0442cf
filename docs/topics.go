// Package docs holds the stockhist documentation topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Readme is the topic listing all the others.
const Readme = "readme"

// Topic returns the markdown content of a documentation topic.
func Topic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// Topics returns the content of topics concatenated together, "*" stands for every topic
// but the readme.
func Topics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			names = All()
		}
		for _, name := range names {
			content, err := Topic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// All returns the names of the documentation topics but the readme, sorted.
func All() []string {
	entries, err := fs.ReadDir(docs, ".")
	if err != nil {
		return nil
	}
	var topics []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || name == Readme {
			continue
		}
		topics = append(topics, name)
	}
	slices.Sort(topics)
	return topics
}
