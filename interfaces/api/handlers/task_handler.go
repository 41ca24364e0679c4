package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JorgeJ97/task-management-backend/application/serviceimpl"
	"github.com/JorgeJ97/task-management-backend/domain/dto"
	"github.com/JorgeJ97/task-management-backend/domain/query"
	"github.com/JorgeJ97/task-management-backend/domain/repositories"
	"github.com/JorgeJ97/task-management-backend/domain/services"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
	"github.com/JorgeJ97/task-management-backend/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyErrorResponse(c, err)
	}
	req.Title = utils.SanitizeString(req.Title)
	req.Description = utils.SanitizeString(req.Description)

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.CreateTask(ctx, dto.CreateTaskRequestToData(&req, user.ID, user.Email))
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task), "Task created successfully")
}

func (h *TaskHandler) GetUserTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	q, err := dto.ParseTaskListQuery(queryValues(c), utils.SanitizeString)
	if err != nil {
		var fe *dto.FieldError
		if errors.As(err, &fe) {
			logger.WarnContext(ctx, "Invalid list query", "field", fe.Field, "error", fe.Message)
			return utils.ValidationErrorResponse(c, []utils.FieldError{{Field: fe.Field, Message: fe.Message, Code: "invalid"}})
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	page, err := h.taskService.GetUserTasks(ctx, user.ID, q.Filters, q.Page, q.Limit)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.PaginatedSuccessResponse(c, dto.TasksToTaskResponses(page.Tasks), page.Pagination)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	task, err := h.taskService.GetTask(c.UserContext(), c.Params("id"), user.ID)
	if err != nil {
		return taskErrorResponse(c, err)
	}
	if task == nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task), "Task retrieved successfully")
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id := c.Params("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Task ID is required")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyErrorResponse(c, err)
	}
	req.Title = utils.SanitizeStringPtr(req.Title)
	req.Description = utils.SanitizeStringPtr(req.Description)

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, id, dto.UpdateTaskRequestToUpdates(&req))
	if err != nil {
		return taskErrorResponse(c, err)
	}
	if task == nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task), "Task updated successfully")
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id := c.Params("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Task ID is required")
	}

	task, err := h.taskService.DeleteTask(c.UserContext(), id, user.ID)
	if err != nil {
		return taskErrorResponse(c, err)
	}
	if task == nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.SuccessResponse(c, nil, "Task deleted successfully")
}

func (h *TaskHandler) ToggleTaskCompletion(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id := c.Params("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Task ID is required")
	}

	task, err := h.taskService.ToggleTaskCompletion(c.UserContext(), id, user.ID)
	if err != nil {
		return taskErrorResponse(c, err)
	}
	if task == nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task), "Task completion toggled successfully")
}

func (h *TaskHandler) GetUserStats(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.taskService.GetUserStats(c.UserContext(), user.ID)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, stats, "User stats retrieved successfully")
}

// taskErrorResponse maps service errors to statuses. The service has already
// logged them.
func taskErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrInvalidTaskID):
		return utils.BadRequestResponse(c, "Invalid task ID format")
	case errors.Is(err, serviceimpl.ErrNoFieldsToUpdate):
		return utils.BadRequestResponse(c, "No valid fields to update")
	case errors.Is(err, query.ErrInvalidDate):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}

// bodyErrorResponse - field ที่ parse ไม่ได้ (เช่น deadline) ตอบเป็น validation error ของ field นั้น
func bodyErrorResponse(c *fiber.Ctx, err error) error {
	var fe *dto.FieldError
	if errors.As(err, &fe) {
		logger.WarnContext(c.UserContext(), "Invalid request field", "field", fe.Field, "error", fe.Message)
		return utils.ValidationErrorResponse(c, []utils.FieldError{{Field: fe.Field, Message: fe.Message, Code: "invalid"}})
	}
	logger.WarnContext(c.UserContext(), "Invalid request body", "error", err)
	return utils.BadRequestResponse(c, "Invalid request body")
}

// queryValues collects repeated keys (?category=a&category=b) which c.Query drops.
func queryValues(c *fiber.Ctx) dto.QueryValues {
	values := dto.QueryValues{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		values[k] = append(values[k], string(value))
	})
	return values
}
