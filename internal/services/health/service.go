// Package health encapsulates health-related checks.
package health

// Status is the health endpoint payload.
type Status struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Service encapsulates health-related checks.
type Service struct {
	version string
}

// NewService constructs a new health service.
func NewService(version string) *Service {
	return &Service{version: version}
}

// Status returns the health payload.
func (s *Service) Status() Status {
	return Status{
		Status:  "healthy",
		Service: "AI Content Optimizer",
		Version: s.version,
	}
}
