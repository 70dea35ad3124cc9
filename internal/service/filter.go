package service

import (
	"sort"
	"strings"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

// FilterAll matches every value of a filter field.
const FilterAll = "all"

// ComplaintFilter narrows a complaint list. Empty fields and FilterAll match everything.
type ComplaintFilter struct {
	// Query is matched case-insensitively against title, id and submitter name.
	Query      string
	Status     string
	Priority   string
	Department string
}

// FilterComplaints returns the complaints matching f, keeping their order.
func FilterComplaints(complaints []model.Complaint, f ComplaintFilter) []model.Complaint {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]model.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Title), query) &&
			!strings.Contains(strings.ToLower(c.ID), query) &&
			!strings.Contains(strings.ToLower(c.SubmittedByName), query) {
			continue
		}
		if !matches(f.Status, string(c.Status)) ||
			!matches(f.Priority, string(c.Priority)) ||
			!matches(f.Department, c.Department) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(want, got string) bool {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, FilterAll) {
		return true
	}
	return strings.EqualFold(want, got)
}

// Departments returns the distinct non-empty departments, sorted.
func Departments(complaints []model.Complaint) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range complaints {
		d := strings.TrimSpace(c.Department)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
