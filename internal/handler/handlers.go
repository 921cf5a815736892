package handler

import (
	"github.com/deppfellow/connect-case-creator/internal/server"
	"github.com/deppfellow/connect-case-creator/internal/service"
)

// Handlers is a container that groups all invocation handlers.
//
// Similar to Services, a single struct keeps the wiring in main short:
// build once at cold start, hand the entry points to the runtime.
type Handlers struct {
	Case *CaseHandler // Case creates one case per invocation.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Case: NewCaseHandler(s, services.Case),
	}
}
