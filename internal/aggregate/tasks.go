package aggregate

import (
	"sort"
	"time"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

// ManualTaskLabel is the grouping key used for manually entered sessions,
// which carry no remote task.
const ManualTaskLabel = "manual"

// TaskSummary aggregates every session sharing one task label.
type TaskSummary struct {
	Label         string
	TotalHours    float64
	TotalEarnings float64
	SessionCount  int
	FirstLogged   time.Time
	LastLogged    time.Time
}

// ByTask groups the sessions inside [from, to] by task label. Remote
// sessions group under their task label, manual ones under ManualTaskLabel.
// Groups are ordered by total hours descending, label ascending on ties.
func ByTask(l *domain.UserLedger, from, to time.Time) []TaskSummary {
	groups := make(map[string]*TaskSummary)

	for d := DateOf(from); !d.After(DateOf(to)); d = d.AddDate(0, 0, 1) {
		bucket, ok := l.Days[d.Format(domain.DateLayout)]
		if !ok {
			continue
		}
		for _, s := range bucket.Sessions {
			label := ManualTaskLabel
			if s.Source == domain.SourceRemote && s.TaskLabel != "" {
				label = s.TaskLabel
			}

			g, ok := groups[label]
			if !ok {
				g = &TaskSummary{Label: label, FirstLogged: s.LoggedAt, LastLogged: s.LoggedAt}
				groups[label] = g
			}
			g.TotalHours += s.HoursEquivalent()
			g.TotalEarnings += s.Earnings
			g.SessionCount++
			if s.LoggedAt.Before(g.FirstLogged) {
				g.FirstLogged = s.LoggedAt
			}
			if s.LoggedAt.After(g.LastLogged) {
				g.LastLogged = s.LoggedAt
			}
		}
	}

	out := make([]TaskSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalHours != out[j].TotalHours {
			return out[i].TotalHours > out[j].TotalHours
		}
		return out[i].Label < out[j].Label
	})
	return out
}
