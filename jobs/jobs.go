package jobs

import "github.com/team13/tutorfind/services"

var svc *services.Services

// Init wires the job package to the service registry before the scheduler
// starts.
func Init(s *services.Services) {
	svc = s
}
