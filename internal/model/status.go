package model

// TaskStatus represents the state of a download invocation. A run moves
// linearly through Pending, Starting and Downloading, and terminates in
// either Completed or Error.
type TaskStatus string

const (
	// TaskStatusPending means the request was accepted but work has not begun.
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the toolchain is being verified and the
	// extraction command assembled.
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means the transfer and merge are in progress.
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the merged file was written successfully.
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the invocation failed.
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus.
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsFinished returns true if the task reached a terminal state.
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
