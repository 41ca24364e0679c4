package dto

import (
	"github.com/JorgeJ97/task-management-backend/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Category:    task.Category,
		Priority:    task.Priority,
		Deadline:    task.Deadline,
		UserID:      task.UserID,
		UserEmail:   task.UserEmail,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// TasksToTaskResponses คืน slice ว่าง (ไม่ใช่ nil) เพื่อให้ JSON เป็น []
func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		if t != nil {
			out = append(out, *TaskToTaskResponse(t))
		}
	}
	return out
}

// CreateTaskRequestToData - ownership มาจาก identity ที่ผ่านการยืนยันแล้วเท่านั้น
func CreateTaskRequestToData(req *CreateTaskRequest, userID, userEmail string) models.CreateTaskData {
	return models.CreateTaskData{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Category:    models.TaskCategory(req.Category),
		Priority:    models.TaskPriority(req.Priority),
		Deadline:    req.Deadline.TimePtr(),
		UserID:      userID,
		UserEmail:   userEmail,
	}
}

// UpdateTaskRequestToUpdates keeps only the keys present in the body,
// immutable ones included.
func UpdateTaskRequestToUpdates(req *UpdateTaskRequest) models.TaskUpdates {
	updates := models.TaskUpdates{}
	if req.Title != nil {
		updates[models.FieldTitle] = *req.Title
	}
	if req.Description != nil {
		updates[models.FieldDescription] = *req.Description
	}
	if req.Completed != nil {
		updates[models.FieldCompleted] = *req.Completed
	}
	if req.Category != nil {
		updates[models.FieldCategory] = models.TaskCategory(*req.Category)
	}
	if req.Priority != nil {
		updates[models.FieldPriority] = models.TaskPriority(*req.Priority)
	}
	if req.Deadline != nil {
		updates[models.FieldDeadline] = req.Deadline.Time
	}

	immutable := map[string]any{
		models.FieldID:        req.ID,
		models.FieldUserID:    req.UserID,
		models.FieldUserEmail: req.UserEmail,
		models.FieldCreatedAt: req.CreatedAt,
		models.FieldUpdatedAt: req.UpdatedAt,
	}
	for k, v := range immutable {
		if v != nil {
			updates[k] = v
		}
	}
	return updates
}
