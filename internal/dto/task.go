package dto

import "encoding/json"

// TaskCreateDTO is the body of POST /api/tasks. The assignee may also be sent
// as "assignee_id".
type TaskCreateDTO struct {
	Index        *int    `json:"index"`
	AssigneeID   *int64  `json:"assigneeId"`
	Title        string  `json:"title" validate:"required,notblank"`
	Content      string  `json:"content"`
	Status       string  `json:"status" validate:"required,notblank"`
	TaskLabelIDs []int64 `json:"taskLabelIds"`
}

func (d *TaskCreateDTO) UnmarshalJSON(data []byte) error {
	type plain TaskCreateDTO
	aux := struct {
		*plain
		AssigneeIDAlias *int64 `json:"assignee_id"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if d.AssigneeID == nil && aux.AssigneeIDAlias != nil {
		d.AssigneeID = aux.AssigneeIDAlias
	}
	return nil
}

// TaskUpdateDTO is the body of PUT /api/tasks/{id}. Absent fields are left
// unchanged; null clears index, assigneeId, content and taskLabelIds.
type TaskUpdateDTO struct {
	Index        Optional[int]     `json:"index,omitzero" swaggertype:"integer"`
	AssigneeID   Optional[int64]   `json:"assigneeId,omitzero" swaggertype:"integer"`
	Title        Optional[string]  `json:"title,omitzero" swaggertype:"string"`
	Content      Optional[string]  `json:"content,omitzero" swaggertype:"string"`
	Status       Optional[string]  `json:"status,omitzero" swaggertype:"string"`
	TaskLabelIDs Optional[[]int64] `json:"taskLabelIds,omitzero" swaggertype:"array,integer"`
}

func (d *TaskUpdateDTO) UnmarshalJSON(data []byte) error {
	type plain TaskUpdateDTO
	aux := struct {
		*plain
		AssigneeIDAlias Optional[int64] `json:"assignee_id"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !d.AssigneeID.Set && aux.AssigneeIDAlias.Set {
		d.AssigneeID = aux.AssigneeIDAlias
	}
	return nil
}

type TaskDTO struct {
	ID           int64   `json:"id"`
	Index        *int    `json:"index"`
	CreatedAt    string  `json:"createdAt" example:"2024-01-31"`
	AssigneeID   *int64  `json:"assigneeId"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Status       string  `json:"status"`
	TaskLabelIDs []int64 `json:"taskLabelIds"`
}

// TaskParamsDTO carries the query parameters of GET /api/tasks.
type TaskParamsDTO struct {
	TitleCont  *string
	AssigneeID *int64
	StatusSlug *string
	LabelID    *int64
}
