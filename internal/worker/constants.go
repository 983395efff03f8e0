package worker

// DefaultConcurrency is used when a pool is created with a non-positive limit.
const DefaultConcurrency = 4

// LogMsgWorkerJobFailed is logged when a job returns an error
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgWorkerJobPanicked is logged when a job panics; the panic becomes the job's error
const LogMsgWorkerJobPanicked = "Worker job panicked"
