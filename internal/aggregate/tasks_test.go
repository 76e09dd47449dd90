package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

func TestByTask_GroupsRemoteByLabelAndManualUnderSentinel(t *testing.T) {
	l := domain.NewUserLedger()

	first := day(2025, 6, 2).Add(9 * time.Hour)
	last := day(2025, 6, 3).Add(17 * time.Hour)

	l.Day("2025-06-02").Append(domain.NewRemoteSession("e1", "Billing", "", 2, 100, first))
	l.Day("2025-06-03").Append(domain.NewRemoteSession("e2", "Billing", "", 1.5, 100, last))
	l.Day("2025-06-03").Append(domain.NewRemoteSession("e3", "Onboarding", "", 1, 100, last))
	addManual(t, l, day(2025, 6, 2), 0, 30, 100)

	groups := ByTask(l, day(2025, 6, 1), day(2025, 6, 30))
	require.Len(t, groups, 3)

	// Ordered by hours descending.
	assert.Equal(t, "Billing", groups[0].Label)
	assert.InDelta(t, 3.5, groups[0].TotalHours, 1e-9)
	assert.Equal(t, 2, groups[0].SessionCount)
	assert.Equal(t, first, groups[0].FirstLogged)
	assert.Equal(t, last, groups[0].LastLogged)

	assert.Equal(t, "Onboarding", groups[1].Label)
	assert.Equal(t, ManualTaskLabel, groups[2].Label)
	assert.InDelta(t, 0.5, groups[2].TotalHours, 1e-9)
}

func TestByTask_RemoteWithoutLabelCountsAsManual(t *testing.T) {
	l := domain.NewUserLedger()
	l.Day("2025-06-02").Append(domain.NewRemoteSession("e1", "", "untitled entry", 1, 100, day(2025, 6, 2)))

	groups := ByTask(l, day(2025, 6, 2), day(2025, 6, 2))
	require.Len(t, groups, 1)
	assert.Equal(t, ManualTaskLabel, groups[0].Label)
}

func TestByTask_WindowFiltersSessions(t *testing.T) {
	l := domain.NewUserLedger()
	l.Day("2025-06-02").Append(domain.NewRemoteSession("e1", "Billing", "", 2, 100, day(2025, 6, 2)))
	l.Day("2025-07-01").Append(domain.NewRemoteSession("e2", "Billing", "", 4, 100, day(2025, 7, 1)))

	groups := ByTask(l, day(2025, 6, 1), day(2025, 6, 30))
	require.Len(t, groups, 1)
	assert.InDelta(t, 2.0, groups[0].TotalHours, 1e-9)
	assert.Equal(t, 1, groups[0].SessionCount)
}
