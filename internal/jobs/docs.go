// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// RateProbeJob quotes the reference shipment (5 kg, 30×20×15 cm, New York to
// Los Angeles) through the full rate pipeline on a schedule and logs which
// source answered. A mock or default answer means the live providers are down
// or filtered out.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getRatesHandler, "0 */5 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds.
package jobs
