// Package analytics implements the in-memory usage ledger. The ledger is an
// explicitly owned aggregate updated once per completed query; it serializes
// its own access so concurrent requests can record safely.
package analytics

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mckinzey/atrium/internal/topics"
)

const (
	maxResponseTimes  = 100
	maxPopularQueries = 50
	maxQueryLength    = 100

	dayFormat = "2006-01-02"
)

// Event captures the outcome of one query for ledger recording.
type Event struct {
	UserID        string
	Department    string
	Query         string
	ResponseTime  float64
	DocumentsUsed []string
	Error         bool
}

// userStats tracks per-user activity.
type userStats struct {
	queryCount  int
	firstSeen   string
	lastSeen    string
	departments map[string]struct{}
}

// Ledger aggregates usage counters across the process lifetime.
type Ledger struct {
	mu sync.Mutex

	totalQueries      int
	users             map[string]*userStats
	departments       map[string]int
	documentsAccessed map[string]int
	queryTypes        map[string]int
	dailyUsage        map[string]int
	responseTimes     []float64
	popularQueries    []string
	errorCount        int

	now func() time.Time
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		users:             make(map[string]*userStats),
		departments:       make(map[string]int),
		documentsAccessed: make(map[string]int),
		queryTypes:        make(map[string]int),
		dailyUsage:        make(map[string]int),
		now:               time.Now,
	}
}

// Record updates the ledger with a completed query.
func (l *Ledger) Record(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.now().Format(dayFormat)

	l.totalQueries++

	user, ok := l.users[e.UserID]
	if !ok {
		user = &userStats{
			firstSeen:   today,
			departments: make(map[string]struct{}),
		}
		l.users[e.UserID] = user
	}
	user.queryCount++
	user.lastSeen = today
	user.departments[e.Department] = struct{}{}

	l.departments[e.Department]++

	for _, doc := range e.DocumentsUsed {
		l.documentsAccessed[doc]++
	}

	l.queryTypes[string(topics.Classify(e.Query))]++
	l.dailyUsage[today]++

	l.responseTimes = append(l.responseTimes, e.ResponseTime)
	if len(l.responseTimes) > maxResponseTimes {
		l.responseTimes = l.responseTimes[len(l.responseTimes)-maxResponseTimes:]
	}

	query := e.Query
	if utf8.RuneCountInString(query) > maxQueryLength {
		query = string([]rune(query)[:maxQueryLength])
	}
	l.popularQueries = append(l.popularQueries, query)
	if len(l.popularQueries) > maxPopularQueries {
		l.popularQueries = l.popularQueries[len(l.popularQueries)-maxPopularQueries:]
	}

	if e.Error {
		l.errorCount++
	}
}
