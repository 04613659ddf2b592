package analytics

import "sort"

// UserDetail reports one user's activity in a snapshot.
type UserDetail struct {
	UserID      string   `json:"user_id"`
	QueryCount  int      `json:"query_count"`
	FirstSeen   string   `json:"first_seen"`
	LastSeen    string   `json:"last_seen"`
	Departments []string `json:"departments"`
}

// Snapshot is a point-in-time view of the ledger for reporting.
type Snapshot struct {
	TotalQueries      int            `json:"total_queries"`
	UniqueUsers       int            `json:"unique_users"`
	Departments       map[string]int `json:"departments"`
	DocumentsAccessed map[string]int `json:"documents_accessed"`
	QueryTypes        map[string]int `json:"query_types"`
	DailyUsage        map[string]int `json:"daily_usage"`
	AvgResponseTime   float64        `json:"avg_response_time"`
	ErrorCount        int            `json:"error_count"`
	ErrorRate         float64        `json:"error_rate"`
	PopularQueries    []string       `json:"popular_queries"`
	ActiveUsersToday  int            `json:"active_users_today"`
	UserDetails       []UserDetail   `json:"user_details"`
}

// Snapshot returns a consistent copy of the ledger's current state.
// Popular queries are limited to the ten most recent.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.now().Format(dayFormat)

	snap := Snapshot{
		TotalQueries:      l.totalQueries,
		UniqueUsers:       len(l.users),
		Departments:       copyCounts(l.departments),
		DocumentsAccessed: copyCounts(l.documentsAccessed),
		QueryTypes:        copyCounts(l.queryTypes),
		DailyUsage:        copyCounts(l.dailyUsage),
		ErrorCount:        l.errorCount,
		PopularQueries:    []string{},
		UserDetails:       make([]UserDetail, 0, len(l.users)),
	}

	if len(l.responseTimes) > 0 {
		var sum float64
		for _, t := range l.responseTimes {
			sum += t
		}
		snap.AvgResponseTime = sum / float64(len(l.responseTimes))
	}

	if l.totalQueries > 0 {
		snap.ErrorRate = float64(l.errorCount) / float64(l.totalQueries) * 100
	}

	recent := l.popularQueries
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	snap.PopularQueries = append(snap.PopularQueries, recent...)

	for id, user := range l.users {
		departments := make([]string, 0, len(user.departments))
		for d := range user.departments {
			departments = append(departments, d)
		}
		sort.Strings(departments)

		if user.lastSeen == today {
			snap.ActiveUsersToday++
		}

		snap.UserDetails = append(snap.UserDetails, UserDetail{
			UserID:      id,
			QueryCount:  user.queryCount,
			FirstSeen:   user.firstSeen,
			LastSeen:    user.lastSeen,
			Departments: departments,
		})
	}

	sort.Slice(snap.UserDetails, func(i, j int) bool {
		return snap.UserDetails[i].UserID < snap.UserDetails[j].UserID
	})

	return snap
}

func copyCounts(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
