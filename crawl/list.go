// Package crawl — player list files.
package crawl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadList parses a player list: one URL per line, blank lines and lines
// starting with '#' ignored. URLs are canonicalized and de-duplicated,
// keeping first-seen order.
func ReadList(r io.Reader) ([]string, error) {
	queue := NewQueue()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queue.Add(ProfileURL(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading player list: %w", err)
	}
	return queue.All(), nil
}

// ReadListFile opens path and parses it with ReadList.
func ReadListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening player list: %w", err)
	}
	defer f.Close()
	return ReadList(f)
}
