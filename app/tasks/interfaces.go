package tasks

// TaskSchedulerInterface defines the interface for background task scheduling.
// Used by the main application and the API layer to manage archive refreshes.
// Example usage:
//
//	scheduler := NewScheduler(client, store)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewRefreshArchiveTask(client, store))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
