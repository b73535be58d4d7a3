package event

const TaskCreatedDestination string = "task_created"

type TaskCreatedMessage struct {
	TaskID     int64  `json:"task_id"`
	IdentityID int64  `json:"identity_id"`
	Title      string `json:"title"`
	WithAI     bool   `json:"with_ai"`
}
