package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

func TestAddTaskSeedsIDFromMax(t *testing.T) {
	s := flourState()
	s.Tasks = []models.ProductionTask{
		{ID: 4, Recipe: "bread", Quantity: 1, Status: models.TaskCompleted},
		{ID: 9, Recipe: "bread", Quantity: 1, Status: models.TaskTodo},
	}

	task, _, err := s.AddTask("bread", 2, "anna", models.TaskTodo)
	require.NoError(t, err)
	assert.Equal(t, 10, task.ID)
	assert.Equal(t, models.TaskTodo, task.Status)
	assert.Equal(t, "anna", task.AssignedTo)
}

func TestAddTaskRejectsUnknownRecipe(t *testing.T) {
	s := New()
	_, _, err := s.AddTask("pizza", 1, "", models.TaskTodo)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.Empty(t, s.Tasks)
}

func TestAddTaskRejectsNonPositiveQuantity(t *testing.T) {
	s := flourState()
	_, _, err := s.AddTask("bread", 0, "", models.TaskTodo)
	assert.Error(t, err)
	assert.Empty(t, s.Tasks)
}

func TestAddTaskCoercesStatus(t *testing.T) {
	s := flourState()
	task, res, err := s.AddTask("bread", 1, "", models.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.TaskTodo, task.Status)
	assert.Nil(t, res)
}

func TestAddTaskCompletedConsumesImmediately(t *testing.T) {
	s := flourState()

	task, res, err := s.AddTask("bread", 3, "", models.TaskCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, task.Status)
	require.NotNil(t, res)
	assert.True(t, res.Consumed)
	assert.InDelta(t, 0.4, s.Inventory[0].Quantity, 1e-9)
}

func TestAdvanceTaskLifecycle(t *testing.T) {
	s := flourState()
	task, _, err := s.AddTask("bread", 1, "", models.TaskTodo)
	require.NoError(t, err)

	// todo -> inprogress, no consumption
	got, res, err := s.AdvanceTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, got.Status)
	assert.Nil(t, res)
	assert.Equal(t, 1.0, s.Inventory[0].Quantity)

	// inprogress -> completed, consumption fires
	got, res, err = s.AdvanceTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, got.Status)
	require.NotNil(t, res)
	assert.True(t, res.Consumed)
	assert.InDelta(t, 0.8, s.Inventory[0].Quantity, 1e-9)

	// completed is terminal: advancing again consumes nothing
	got, res, err = s.AdvanceTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, got.Status)
	assert.Nil(t, res)
	assert.InDelta(t, 0.8, s.Inventory[0].Quantity, 1e-9)
}

func TestCompleteTaskFromTodo(t *testing.T) {
	s := flourState()
	task, _, err := s.AddTask("bread", 1, "", models.TaskTodo)
	require.NoError(t, err)

	got, res, err := s.CompleteTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, got.Status)
	require.NotNil(t, res)
	assert.InDelta(t, 0.8, s.Inventory[0].Quantity, 1e-9)

	// idempotent on completed tasks
	_, res, err = s.CompleteTask(task.ID)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.InDelta(t, 0.8, s.Inventory[0].Quantity, 1e-9)
}

func TestAdvanceUnknownTask(t *testing.T) {
	s := New()
	_, _, err := s.AdvanceTask(42)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := flourState()
	_, _, err := s.AddTask("bread", 2, "marco", models.TaskTodo)
	require.NoError(t, err)

	snap := s.Snapshot()

	other := New()
	other.Restore(snap)
	assert.Equal(t, s.Inventory, other.Inventory)
	assert.Equal(t, s.Recipes, other.Recipes)
	assert.Equal(t, s.Tasks, other.Tasks)

	// snapshot is a copy, not an alias
	other.Inventory[0].Quantity = 99
	assert.Equal(t, 1.0, s.Inventory[0].Quantity)
}
