// Package filter turns optional task query parameters into a single SQL
// predicate over the tasks table.
package filter

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// TaskFilter holds the optional task filters. A nil field is not applied.
type TaskFilter struct {
	TitleCont  *string
	AssigneeID *int64
	StatusSlug *string
	LabelID    *int64
}

// ToSql renders the AND of every present filter. With no filter present it
// renders the tautology "(1=1)", so TaskFilter satisfies squirrel.Sqlizer.
func (f TaskFilter) ToSql() (string, []interface{}, error) {
	return f.Predicate().ToSql()
}

// Predicate returns the conjunction of the present filters.
func (f TaskFilter) Predicate() squirrel.And {
	pred := squirrel.And{}
	for _, p := range []squirrel.Sqlizer{
		withTitleCont(f.TitleCont),
		withAssigneeID(f.AssigneeID),
		withStatusSlug(f.StatusSlug),
		withLabelID(f.LabelID),
	} {
		if p != nil {
			pred = append(pred, p)
		}
	}
	return pred
}

func withTitleCont(titleCont *string) squirrel.Sqlizer {
	if titleCont == nil {
		return nil
	}
	return squirrel.Like{"LOWER(tasks.name)": "%" + escapeLike(strings.ToLower(*titleCont)) + "%"}
}

func withAssigneeID(assigneeID *int64) squirrel.Sqlizer {
	if assigneeID == nil {
		return nil
	}
	return squirrel.Eq{"tasks.assignee_id": *assigneeID}
}

func withStatusSlug(slug *string) squirrel.Sqlizer {
	if slug == nil {
		return nil
	}
	return squirrel.Expr(
		"EXISTS (SELECT 1 FROM task_statuses ts WHERE ts.id = tasks.task_status_id AND ts.slug = ?)",
		*slug,
	)
}

func withLabelID(labelID *int64) squirrel.Sqlizer {
	if labelID == nil {
		return nil
	}
	return squirrel.Expr(
		"EXISTS (SELECT 1 FROM task_labels tl WHERE tl.task_id = tasks.id AND tl.label_id = ?)",
		*labelID,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
