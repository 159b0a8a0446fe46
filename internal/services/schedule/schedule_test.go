package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxylife/oxycare/internal/models"
)

func iv(id int, status, planned string, technicianID int) models.Intervention {
	return models.Intervention{ID: id, Status: status, PlannedDate: planned, TechnicianID: technicianID}
}

func TestParseDate(t *testing.T) {
	cases := []string{
		"2026-08-29T10:30:00Z",
		"2026-08-29T10:30:00",
		"2026-08-29 10:30:00",
		"2026-08-29",
	}
	for _, s := range cases {
		parsed, ok := ParseDate(s)
		require.True(t, ok, s)
		assert.Equal(t, 29, parsed.Day())
	}

	_, ok := ParseDate("29/08/2026")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestGroupByStatus(t *testing.T) {
	list := []models.Intervention{
		iv(1, models.StatusPlanned, "", 0),
		iv(2, models.StatusDone, "", 0),
		iv(3, models.StatusPlanned, "", 0),
	}

	groups := GroupByStatus(list)
	require.Len(t, groups[models.StatusPlanned], 2)
	assert.Equal(t, 1, groups[models.StatusPlanned][0].ID, "input order preserved")
	assert.Equal(t, 3, groups[models.StatusPlanned][1].ID)
	require.Len(t, groups[models.StatusDone], 1)
}

func TestCountByStatus_ZeroFilled(t *testing.T) {
	counts := CountByStatus([]models.Intervention{
		iv(1, models.StatusPlanned, "", 0),
		iv(2, models.StatusPlanned, "", 0),
		iv(3, models.StatusCancelled, "", 0),
	})

	assert.Equal(t, 2, counts[models.StatusPlanned])
	assert.Equal(t, 1, counts[models.StatusCancelled])

	// Every known status has an entry even with no interventions
	for _, status := range models.InterventionStatuses {
		_, present := counts[status]
		assert.True(t, present, status)
	}
}

func TestForTechnician(t *testing.T) {
	list := []models.Intervention{
		iv(1, models.StatusPlanned, "", 7),
		iv(2, models.StatusPlanned, "", 9),
		iv(3, models.StatusInProgress, "", 7),
	}

	mine := ForTechnician(list, 7)
	require.Len(t, mine, 2)
	assert.Equal(t, 1, mine[0].ID)
	assert.Equal(t, 3, mine[1].ID)
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	list := []models.Intervention{
		iv(1, models.StatusPlanned, "2026-08-29 09:00:00", 0), // today, already passed
		iv(2, models.StatusPlanned, "2026-08-29 16:00:00", 0), // today
		iv(3, models.StatusPlanned, "2026-09-02", 0),          // this week
		iv(4, models.StatusPlanned, "2026-09-20", 0),          // beyond the week
		iv(5, models.StatusPlanned, "", 0),                    // no date
	}

	today := Upcoming(list, WindowToday, now)
	require.Len(t, today, 2)
	assert.Equal(t, 1, today[0].ID)
	assert.Equal(t, 2, today[1].ID)

	week := Upcoming(list, WindowWeek, now)
	require.Len(t, week, 3)

	all := Upcoming(list, WindowAll, now)
	require.Len(t, all, 4, "undated interventions are dropped")
}

func TestClassify(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, UrgencyOverdue, Classify("2026-08-28 10:00:00", now))
	assert.Equal(t, UrgencyUrgent, Classify("2026-08-30 10:00:00", now))
	assert.Equal(t, UrgencySoon, Classify("2026-08-31 10:00:00", now))
	assert.Equal(t, UrgencyPlanned, Classify("2026-09-15", now))
	assert.Equal(t, UrgencyPlanned, Classify("garbage", now))

	assert.Equal(t, "overdue", UrgencyOverdue.String())
	assert.Equal(t, "urgent", UrgencyUrgent.String())
}

func TestSortByPlannedDate(t *testing.T) {
	list := []models.Intervention{
		iv(1, models.StatusPlanned, "2026-09-10", 0),
		iv(2, models.StatusPlanned, "bad date", 0),
		iv(3, models.StatusPlanned, "2026-09-01", 0),
		iv(4, models.StatusPlanned, "2026-09-05 08:00:00", 0),
	}

	SortByPlannedDate(list)

	assert.Equal(t, 3, list[0].ID)
	assert.Equal(t, 4, list[1].ID)
	assert.Equal(t, 1, list[2].ID)
	assert.Equal(t, 2, list[3].ID, "unparsable dates sort last")
}

func TestSearchPatients(t *testing.T) {
	patients := []models.Patient{
		{ID: 1, LastName: "Alami", FirstName: "Sara", Code: "PAT-001", City: "Casablanca", Phone: "0601020304"},
		{ID: 2, LastName: "Benani", FirstName: "Omar", Code: "PAT-002", City: "Rabat", Phone: "0605060708"},
	}

	assert.Len(t, SearchPatients(patients, "alami"), 1)
	assert.Len(t, SearchPatients(patients, "PAT-00"), 2)
	assert.Len(t, SearchPatients(patients, "rabat"), 1)
	assert.Len(t, SearchPatients(patients, "0601"), 1)
	assert.Len(t, SearchPatients(patients, "  "), 2, "blank term matches everything")
	assert.Empty(t, SearchPatients(patients, "zz"))
}
