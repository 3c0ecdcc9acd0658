package services

import (
	"context"

	"github.com/nayeemhs/orderdesk/internal/client/api"
	"github.com/nayeemhs/orderdesk/internal/client/cache"
	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/logging"
)

// TasksService manages the shared to-do list.
type TasksService struct {
	client   api.Client
	cache    *cache.Collection[models.Task]
	notifier notify.Notifier
	logger   logging.Logger
}

func NewTasksService(client api.Client, notifier notify.Notifier, logger logging.Logger) *TasksService {
	return &TasksService{
		client:   client,
		cache:    cache.NewCollection("tasks", client.Tasks),
		notifier: notifier,
		logger:   logger.With("component", "tasks"),
	}
}

func (s *TasksService) Tasks(ctx context.Context) ([]models.Task, error) {
	return s.cache.Get(ctx)
}

func (s *TasksService) Create(ctx context.Context, input models.TaskInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.CreateTask(ctx, input); err != nil {
		s.logger.Warn(ctx, "task create rejected", "error", err)
		return
	}
	s.notifier.Success("Success", "Task created successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "task cache refresh failed", "error", err)
	}
}

func (s *TasksService) Update(ctx context.Context, id string, input models.TaskInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.UpdateTask(ctx, id, input); err != nil {
		s.logger.Warn(ctx, "task update rejected", "id", id, "error", err)
		return
	}
	s.notifier.Success("Success", "Task updated successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "task cache refresh failed", "error", err)
	}
}

func (s *TasksService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Success", "Task deleted successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "task cache refresh failed", "error", err)
	}
	return nil
}
