package state

import (
	"errors"
	"fmt"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

// ErrTaskNotFound reports an unknown task identifier.
var ErrTaskNotFound = errors.New("task not found")

// nextTaskID seeds new ids above anything already present so tasks
// restored from the backend never collide with new ones.
func (s *State) nextTaskID() int {
	max := 0
	for _, t := range s.Tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

func (s *State) findTask(id int) *models.ProductionTask {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// AddTask appends a production task. Any initial status other than
// completed is coerced to todo. A task created directly as completed
// consumes inventory immediately; when its recipe is missing the task is
// not created at all.
func (s *State) AddTask(recipe string, quantity float64, assignedTo string, initial models.TaskStatus) (models.ProductionTask, *ConsumeResult, error) {
	if _, ok := s.Recipes[recipe]; !ok {
		return models.ProductionTask{}, nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, recipe)
	}
	if quantity <= 0 {
		return models.ProductionTask{}, nil, errors.New("quantity must be positive")
	}
	if initial != models.TaskCompleted {
		initial = models.TaskTodo
	}

	task := models.ProductionTask{
		ID:         s.nextTaskID(),
		Recipe:     recipe,
		Quantity:   quantity,
		AssignedTo: assignedTo,
		Status:     initial,
	}

	var res *ConsumeResult
	if initial == models.TaskCompleted {
		r, err := s.ConsumeForTask(task)
		if err != nil {
			return models.ProductionTask{}, nil, err
		}
		res = &r
	}

	s.Tasks = append(s.Tasks, task)
	return task, res, nil
}

// AdvanceTask moves a task one step forward: todo to inprogress, then
// inprogress to completed. Consumption fires exactly once, on the
// transition into completed; completed tasks are terminal.
func (s *State) AdvanceTask(id int) (models.ProductionTask, *ConsumeResult, error) {
	task := s.findTask(id)
	if task == nil {
		return models.ProductionTask{}, nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	switch task.Status {
	case models.TaskTodo:
		task.Status = models.TaskInProgress
	case models.TaskInProgress:
		res, err := s.ConsumeForTask(*task)
		if err != nil {
			return models.ProductionTask{}, nil, err
		}
		task.Status = models.TaskCompleted
		return *task, &res, nil
	case models.TaskCompleted:
		// terminal, nothing to do
	}
	return *task, nil, nil
}

// CompleteTask jumps a task straight to completed from either open
// status, consuming inventory on the way. Calling it on a task that is
// already completed is a no-op so consumption cannot fire twice.
func (s *State) CompleteTask(id int) (models.ProductionTask, *ConsumeResult, error) {
	task := s.findTask(id)
	if task == nil {
		return models.ProductionTask{}, nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if task.Status == models.TaskCompleted {
		return *task, nil, nil
	}

	res, err := s.ConsumeForTask(*task)
	if err != nil {
		return models.ProductionTask{}, nil, err
	}
	task.Status = models.TaskCompleted
	return *task, &res, nil
}
