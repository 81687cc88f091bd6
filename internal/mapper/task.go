package mapper

import (
	"context"
	"sort"

	"taskmanager/internal/dto"
	"taskmanager/internal/filter"
	"taskmanager/internal/model"
)

// TaskReferences resolves the relation fields of task DTOs.
type TaskReferences interface {
	// StatusBySlug fails with a not-found error when no status has the slug.
	StatusBySlug(ctx context.Context, slug string) (*model.TaskStatus, error)
	// UserByID fails with a not-found error when no user has the id.
	UserByID(ctx context.Context, id int64) (*model.User, error)
	// LabelsByIDs returns the labels that exist among ids.
	LabelsByIDs(ctx context.Context, ids []int64) ([]model.Label, error)
}

func ToTaskDTO(t *model.Task) dto.TaskDTO {
	labelIDs := t.LabelIDs()
	sort.Slice(labelIDs, func(i, j int) bool { return labelIDs[i] < labelIDs[j] })

	return dto.TaskDTO{
		ID:           t.ID,
		Index:        t.TaskIndex,
		CreatedAt:    dto.FormatDate(t.CreatedAt),
		AssigneeID:   t.AssigneeID,
		Title:        t.Name,
		Content:      t.Description,
		Status:       t.TaskStatus.Slug,
		TaskLabelIDs: labelIDs,
	}
}

func ToTaskDTOs(tasks []model.Task) []dto.TaskDTO {
	result := make([]dto.TaskDTO, len(tasks))
	for i := range tasks {
		result[i] = ToTaskDTO(&tasks[i])
	}
	return result
}

func ToTask(ctx context.Context, d dto.TaskCreateDTO, refs TaskReferences) (*model.Task, error) {
	task := &model.Task{
		Name:        d.Title,
		Description: d.Content,
		TaskIndex:   d.Index,
	}

	if err := setStatus(ctx, task, d.Status, refs); err != nil {
		return nil, err
	}
	if d.AssigneeID != nil {
		if err := setAssignee(ctx, task, *d.AssigneeID, refs); err != nil {
			return nil, err
		}
	}
	if err := setLabels(ctx, task, d.TaskLabelIDs, refs); err != nil {
		return nil, err
	}
	return task, nil
}

func ApplyTaskUpdate(ctx context.Context, t *model.Task, d dto.TaskUpdateDTO, refs TaskReferences) error {
	if d.Title.HasValue() {
		t.Name = d.Title.Value
	}
	if d.Content.Set {
		t.Description = d.Content.Value
	}
	if d.Index.Set {
		if d.Index.Null {
			t.TaskIndex = nil
		} else {
			index := d.Index.Value
			t.TaskIndex = &index
		}
	}
	if d.Status.HasValue() {
		if err := setStatus(ctx, t, d.Status.Value, refs); err != nil {
			return err
		}
	}
	if d.AssigneeID.Set {
		if d.AssigneeID.Null {
			t.AssigneeID = nil
			t.Assignee = nil
		} else if err := setAssignee(ctx, t, d.AssigneeID.Value, refs); err != nil {
			return err
		}
	}
	if d.TaskLabelIDs.Set {
		if err := setLabels(ctx, t, d.TaskLabelIDs.Value, refs); err != nil {
			return err
		}
	}
	return nil
}

// ToTaskFilter converts query parameters into the task filter.
func ToTaskFilter(p dto.TaskParamsDTO) filter.TaskFilter {
	return filter.TaskFilter{
		TitleCont:  p.TitleCont,
		AssigneeID: p.AssigneeID,
		StatusSlug: p.StatusSlug,
		LabelID:    p.LabelID,
	}
}

func setStatus(ctx context.Context, t *model.Task, slug string, refs TaskReferences) error {
	status, err := refs.StatusBySlug(ctx, slug)
	if err != nil {
		return err
	}
	t.TaskStatusID = status.ID
	t.TaskStatus = *status
	return nil
}

func setAssignee(ctx context.Context, t *model.Task, userID int64, refs TaskReferences) error {
	user, err := refs.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	t.AssigneeID = &user.ID
	t.Assignee = user
	return nil
}

func setLabels(ctx context.Context, t *model.Task, ids []int64, refs TaskReferences) error {
	if len(ids) == 0 {
		t.Labels = []model.Label{}
		return nil
	}
	labels, err := refs.LabelsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	t.Labels = labels
	return nil
}
