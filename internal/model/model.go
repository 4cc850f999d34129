package model

import "todoform/internal/rows"

// Field names shared by both record shapes. They double as JSON keys in
// persisted snapshots.
const (
	FieldTask        = "task"
	FieldDescription = "description"
)

// Storage keys for the two form sections.
const (
	KeyTodoList            = "todo_exam_list_1"
	KeyTodoWithDescription = "todo_exam_list_2"
)

// Task is a row of the plain TODO LIST.
type Task struct {
	ID   string `json:"id" yaml:"id"`
	Task string `json:"task" yaml:"task"`
}

func (t Task) RowID() string { return t.ID }

func (t Task) Field(name string) string {
	if name == FieldTask {
		return t.Task
	}
	return ""
}

func (t Task) WithField(name, value string) Task {
	if name == FieldTask {
		t.Task = value
	}
	return t
}

// DescribedTask is a row of the TODO LIST with Description.
type DescribedTask struct {
	ID          string `json:"id" yaml:"id"`
	Task        string `json:"task" yaml:"task"`
	Description string `json:"description" yaml:"description"`
}

func (t DescribedTask) RowID() string { return t.ID }

func (t DescribedTask) Field(name string) string {
	switch name {
	case FieldTask:
		return t.Task
	case FieldDescription:
		return t.Description
	default:
		return ""
	}
}

func (t DescribedTask) WithField(name, value string) DescribedTask {
	switch name {
	case FieldTask:
		t.Task = value
	case FieldDescription:
		t.Description = value
	}
	return t
}

var TodoList = rows.Schema[Task]{
	Name:   "TODO LIST",
	Key:    KeyTodoList,
	Fields: []string{FieldTask},
	Blank:  func(id string) Task { return Task{ID: id} },
}

var TodoWithDescription = rows.Schema[DescribedTask]{
	Name:   "TODO LIST with Description",
	Key:    KeyTodoWithDescription,
	Fields: []string{FieldTask, FieldDescription},
	Blank:  func(id string) DescribedTask { return DescribedTask{ID: id} },
}

// FieldLabel is the input placeholder for a field.
func FieldLabel(name string) string {
	switch name {
	case FieldTask:
		return "Task Name"
	case FieldDescription:
		return "Description"
	default:
		return name
	}
}

// ColumnLabel heads a field's column in the summary tables.
func ColumnLabel(name string) string {
	switch name {
	case FieldTask:
		return "Task"
	case FieldDescription:
		return "Description"
	default:
		return name
	}
}
