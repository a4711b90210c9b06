// Package crawl — ordered queue of profile URLs with deduplication.
// A player listed twice (or reached through two squad pages) is scraped once.
package crawl

// Queue collects profile URLs in arrival order, ignoring repeats.
type Queue struct {
	items []string
	seen  map[string]bool
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		seen: make(map[string]bool),
	}
}

// Add enqueues a URL if it hasn't been seen before and reports whether it
// was added.
func (q *Queue) Add(url string) bool {
	if q.seen[url] {
		return false
	}
	q.seen[url] = true
	q.items = append(q.items, url)
	return true
}

// All returns all queued URLs in insertion order.
func (q *Queue) All() []string {
	return q.items
}
