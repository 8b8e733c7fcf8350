// Package schedule runs configured export jobs on cron schedules. Jobs come
// from the schedule section of the configuration and execute through the
// export orchestrator; the scheduler supports hot reload of the job set.
package schedule
