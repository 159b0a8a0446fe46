// Package schedule groups and filters interventions for planning views:
// status tabs, technician reminders, and urgency badges.
package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/oxylife/oxycare/internal/models"
)

// Window selects which upcoming interventions a reminder view shows.
type Window int

const (
	WindowAll Window = iota
	WindowToday
	WindowWeek
)

// Urgency classifies how soon a planned intervention is due.
type Urgency int

const (
	UrgencyOverdue Urgency = iota // planned date already passed
	UrgencyUrgent                 // due within 24h
	UrgencySoon                   // due within 48h
	UrgencyPlanned                // further out
)

func (u Urgency) String() string {
	switch u {
	case UrgencyOverdue:
		return "overdue"
	case UrgencyUrgent:
		return "urgent"
	case UrgencySoon:
		return "soon"
	default:
		return "planned"
	}
}

// dateLayouts covers the timestamp shapes the backend emits.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a backend date string, trying each known layout.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GroupByStatus buckets interventions by status for tab display, preserving
// input order within each bucket.
func GroupByStatus(interventions []models.Intervention) map[string][]models.Intervention {
	groups := make(map[string][]models.Intervention)
	for _, iv := range interventions {
		groups[iv.Status] = append(groups[iv.Status], iv)
	}
	return groups
}

// CountByStatus returns per-status counts in the canonical display order.
// Statuses with no interventions are included with a zero count.
func CountByStatus(interventions []models.Intervention) map[string]int {
	counts := make(map[string]int, len(models.InterventionStatuses))
	for _, status := range models.InterventionStatuses {
		counts[status] = 0
	}
	for _, iv := range interventions {
		counts[iv.Status]++
	}
	return counts
}

// ForTechnician keeps only the interventions assigned to the given technician.
func ForTechnician(interventions []models.Intervention, technicianID int) []models.Intervention {
	var mine []models.Intervention
	for _, iv := range interventions {
		if iv.TechnicianID == technicianID {
			mine = append(mine, iv)
		}
	}
	return mine
}

// Upcoming filters interventions with a planned date inside the window,
// relative to now. Interventions without a parsable planned date are dropped.
func Upcoming(interventions []models.Intervention, window Window, now time.Time) []models.Intervention {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekEnd := today.AddDate(0, 0, 7)

	var result []models.Intervention
	for _, iv := range interventions {
		planned, ok := ParseDate(iv.PlannedDate)
		if !ok {
			continue
		}

		switch window {
		case WindowToday:
			y1, m1, d1 := planned.Date()
			y2, m2, d2 := today.Date()
			if y1 == y2 && m1 == m2 && d1 == d2 {
				result = append(result, iv)
			}
		case WindowWeek:
			if !planned.Before(today) && !planned.After(weekEnd) {
				result = append(result, iv)
			}
		default:
			result = append(result, iv)
		}
	}
	return result
}

// Classify returns the urgency of a planned date relative to now.
func Classify(plannedDate string, now time.Time) Urgency {
	planned, ok := ParseDate(plannedDate)
	if !ok {
		return UrgencyPlanned
	}

	diff := planned.Sub(now)
	switch {
	case diff < 0:
		return UrgencyOverdue
	case diff < 24*time.Hour:
		return UrgencyUrgent
	case diff < 48*time.Hour:
		return UrgencySoon
	default:
		return UrgencyPlanned
	}
}

// SortByPlannedDate orders interventions by planned date ascending.
// Unparsable dates sort last.
func SortByPlannedDate(interventions []models.Intervention) {
	sort.SliceStable(interventions, func(i, j int) bool {
		ti, oki := ParseDate(interventions[i].PlannedDate)
		tj, okj := ParseDate(interventions[j].PlannedDate)
		if !oki {
			return false
		}
		if !okj {
			return true
		}
		return ti.Before(tj)
	})
}

// SearchPatients filters an already-fetched patient list by a free-text term
// matched against name, code, city, and phone (case-insensitive).
func SearchPatients(patients []models.Patient, term string) []models.Patient {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return patients
	}

	var matched []models.Patient
	for _, p := range patients {
		haystack := strings.ToLower(strings.Join([]string{
			p.LastName, p.FirstName, p.Code, p.City, p.Phone,
		}, " "))
		if strings.Contains(haystack, term) {
			matched = append(matched, p)
		}
	}
	return matched
}
