package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/cache"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/codec"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

const reportCacheTTL = 5 * time.Minute

// Count is one row of a breakdown.
type Count struct {
	Name  string          `json:"name"`
	Total int             `json:"total"`
	Share decimal.Decimal `json:"share"`
}

// DepartmentCount is the workload of one department.
type DepartmentCount struct {
	Name           string          `json:"name"`
	Total          int             `json:"total"`
	Resolved       int             `json:"resolved"`
	ResolutionRate decimal.Decimal `json:"resolutionRate"`
}

// MonthCount counts complaints filed in one calendar month (YYYY-MM).
type MonthCount struct {
	Month    string `json:"month"`
	Total    int    `json:"total"`
	Resolved int    `json:"resolved"`
}

// Summary aggregates the complaint collection. Percentages have one decimal place.
type Summary struct {
	Total          int               `json:"total"`
	ByStatus       []Count           `json:"byStatus"`
	ByPriority     []Count           `json:"byPriority"`
	ByCategory     []Count           `json:"byCategory"`
	ByDepartment   []DepartmentCount `json:"byDepartment"`
	ByMonth        []MonthCount      `json:"byMonth"`
	ResolutionRate decimal.Decimal   `json:"resolutionRate"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}

// ReportService computes admin reports.
type ReportService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type reportService struct {
	complaints ComplaintService
	cache      *cache.Client
	keys       codec.Keys
	now        func() time.Time
}

// NewReportService builds a ReportService reading through complaints. The
// summary is cached until the next complaint mutation or the TTL.
//
// Snapshots are keyed by a generation that every mutation bumps after it
// commits. A summary computed from a list read before the bump lands under the
// old generation and is never served.
func NewReportService(complaints ComplaintService, c *cache.Client, keys codec.Keys, now func() time.Time) ReportService {
	return &reportService{
		complaints: complaints,
		cache:      c,
		keys:       keys,
		now:        clockOrNow(now),
	}
}

func reportGenerationKey(keys codec.Keys) string {
	return "report:generation:" + keys.Complaints
}

func reportCacheKey(keys codec.Keys, generation int64) string {
	return fmt.Sprintf("report:summary:%s:%d", keys.Complaints, generation)
}

func (s *reportService) Summary(ctx context.Context) (*Summary, error) {
	// read the generation before the complaints
	key := reportCacheKey(s.keys, s.cache.GetInt64(ctx, reportGenerationKey(s.keys)))

	var cached Summary
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	complaints, err := s.complaints.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := Summarize(complaints, s.now().UTC())
	_ = s.cache.SetJSON(ctx, key, summary, reportCacheTTL)
	return summary, nil
}

// Summarize aggregates complaints without touching any store.
func Summarize(complaints []model.Complaint, now time.Time) *Summary {
	total := len(complaints)
	statusCounts := make(map[string]int)
	priorityCounts := make(map[string]int)
	categoryCounts := make(map[string]int)
	departments := make(map[string]*DepartmentCount)
	months := make(map[string]*MonthCount)
	resolved := 0

	for _, c := range complaints {
		statusCounts[string(c.Status)]++
		priorityCounts[string(c.Priority)]++
		categoryCounts[c.Category]++

		isResolved := c.Status == model.ComplaintStatusResolved
		if isResolved {
			resolved++
		}

		d, ok := departments[c.Department]
		if !ok {
			d = &DepartmentCount{Name: c.Department}
			departments[c.Department] = d
		}
		d.Total++

		key := c.CreatedAt.UTC().Format("2006-01")
		m, ok := months[key]
		if !ok {
			m = &MonthCount{Month: key}
			months[key] = m
		}
		m.Total++

		if isResolved {
			d.Resolved++
			m.Resolved++
		}
	}

	summary := &Summary{
		Total:          total,
		ResolutionRate: percent(resolved, total),
		GeneratedAt:    now,
	}

	for _, st := range model.ComplaintStatuses {
		summary.ByStatus = append(summary.ByStatus, Count{Name: string(st), Total: statusCounts[string(st)], Share: percent(statusCounts[string(st)], total)})
	}
	for _, p := range model.ComplaintPriorities {
		summary.ByPriority = append(summary.ByPriority, Count{Name: string(p), Total: priorityCounts[string(p)], Share: percent(priorityCounts[string(p)], total)})
	}

	summary.ByCategory = make([]Count, 0, len(categoryCounts))
	for name, n := range categoryCounts {
		summary.ByCategory = append(summary.ByCategory, Count{Name: name, Total: n, Share: percent(n, total)})
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Name < b.Name
	})

	summary.ByDepartment = make([]DepartmentCount, 0, len(departments))
	for _, d := range departments {
		d.ResolutionRate = percent(d.Resolved, d.Total)
		summary.ByDepartment = append(summary.ByDepartment, *d)
	}
	sort.Slice(summary.ByDepartment, func(i, j int) bool {
		return summary.ByDepartment[i].Name < summary.ByDepartment[j].Name
	})

	summary.ByMonth = make([]MonthCount, 0, len(months))
	for _, m := range months {
		summary.ByMonth = append(summary.ByMonth, *m)
	}
	sort.Slice(summary.ByMonth, func(i, j int) bool {
		return summary.ByMonth[i].Month < summary.ByMonth[j].Month
	})

	return summary
}

// percent returns part/whole*100 rounded to one decimal place, 0 when whole is 0.
func percent(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(whole)), 1)
}
