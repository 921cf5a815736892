package service

import (
	"github.com/deppfellow/connect-case-creator/internal/server"
)

// Services groups every service built from the process container.
type Services struct {
	Case *CaseService
}

// NewService wires the services from the clients owned by s.
func NewService(s *server.Server) (*Services, error) {
	return &Services{
		Case: NewCaseService(s.Identity, s.Cases),
	}, nil
}
