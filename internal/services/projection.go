package services

import (
	"slices"
	"sort"
	"strings"

	"activity-sampler/internal/domain"
)

// categoryFilter reports whether a category is selected. A nil or empty
// selection selects everything.
type categoryFilter map[string]bool

func newCategoryFilter(categories []string) categoryFilter {
	if len(categories) == 0 {
		return nil
	}
	filter := make(categoryFilter, len(categories))
	for _, category := range categories {
		filter[category] = true
	}
	return filter
}

func (f categoryFilter) matches(category string) bool {
	return f == nil || f[category]
}

func (f categoryFilter) matchesAny(categories []string) bool {
	if f == nil {
		return true
	}
	for _, category := range categories {
		if f[category] {
			return true
		}
	}
	return false
}

func (f categoryFilter) activities(activities []domain.Activity) []domain.Activity {
	if f == nil {
		return activities
	}
	var selected []domain.Activity
	for _, activity := range activities {
		if f.matches(activity.Category) {
			selected = append(selected, activity)
		}
	}
	return selected
}

// distinctCategories returns every category of the log, the empty category
// first and the rest sorted.
func distinctCategories(activities []domain.Activity) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, activity := range activities {
		if !seen[activity.Category] {
			seen[activity.Category] = true
			categories = append(categories, activity.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// sortedChronologically returns a copy ordered by time, keeping log order
// for equal instants.
func sortedChronologically(activities []domain.Activity) []domain.Activity {
	sorted := slices.Clone(activities)
	slices.SortStableFunc(sorted, func(a, b domain.Activity) int {
		return a.DateTime.Compare(b.DateTime)
	})
	return sorted
}

func inRange(activities []domain.Activity, from, to domain.Date) []domain.Activity {
	var selected []domain.Activity
	for _, activity := range activities {
		if activity.Date().Between(from, to) {
			selected = append(selected, activity)
		}
	}
	return selected
}

// task joins every occurrence of one task name, whatever its category.
type task struct {
	Name       string
	First      domain.Date
	Last       domain.Date
	Categories []string
}

// CycleTime counts the days from first to last occurrence, both included.
func (t task) CycleTime() int {
	return t.Last.DaysSince(t.First) + 1
}

// joinTasks folds activities into tasks ordered by first occurrence.
func joinTasks(activities []domain.Activity) []*task {
	index := make(map[string]*task)
	var tasks []*task
	for _, activity := range sortedChronologically(activities) {
		date := activity.Date()
		t, ok := index[activity.Task]
		if !ok {
			t = &task{Name: activity.Task, First: date, Last: date}
			index[activity.Task] = t
			tasks = append(tasks, t)
		}
		if date.Before(t.First) {
			t.First = date
		}
		if date.After(t.Last) {
			t.Last = date
		}
		if !slices.Contains(t.Categories, activity.Category) {
			t.Categories = append(t.Categories, activity.Category)
		}
	}
	return tasks
}

// tasks keeps tasks having at least one selected category.
func (f categoryFilter) tasks(tasks []*task) []*task {
	if f == nil {
		return tasks
	}
	var selected []*task
	for _, t := range tasks {
		if f.matchesAny(t.Categories) {
			selected = append(selected, t)
		}
	}
	return selected
}

// distinctJoined collects distinct values in a stable sorted order.
type distinctJoined struct {
	values []string
}

func (d *distinctJoined) add(value string) {
	if value == "" || slices.Contains(d.values, value) {
		return
	}
	d.values = append(d.values, value)
}

func (d *distinctJoined) String() string {
	sorted := slices.Clone(d.values)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
