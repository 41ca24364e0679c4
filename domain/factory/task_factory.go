package factory

import "github.com/JorgeJ97/task-management-backend/domain/models"

// CreateTask applies category driven defaults to a task before it is persisted.
// It never fails: an unknown category is coerced to general.
func CreateTask(input models.CreateTaskData) models.CreateTaskData {
	data := input

	if !data.Category.IsValid() {
		data.Category = models.CategoryGeneral
	}

	if data.Priority == "" {
		data.Priority = models.DefaultPriorityFor(data.Category)
	}

	if data.Description == "" {
		data.Description = models.DefaultTaskDescription
	}

	if data.Completed == nil {
		completed := false
		data.Completed = &completed
	}

	return data
}
