package models

// TaskStatus represents the status of a production task
type TaskStatus string

const (
	// Task statuses; transitions only move forward
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "inprogress"
	TaskCompleted  TaskStatus = "completed"
)

// ProductionTask schedules a batch run of a recipe. Quantity is a batch
// count, not a unit-converted amount. Inventory is consumed exactly once,
// at the transition into completed.
type ProductionTask struct {
	ID         int        `json:"id"`
	Recipe     string     `json:"recipe"`
	Quantity   float64    `json:"quantity"`
	AssignedTo string     `json:"assignedTo,omitempty"`
	Status     TaskStatus `json:"status"`
}
