package services

import (
	portsrepo "github.com/SscSPs/money_counter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Pronunciation: NewPronunciationService(),
		Calculation:   NewCalculationService(repos.CalculationRepo),
		TokenService:  NewTokenService(cfg),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PronunciationSvc     = (*pronunciationService)(nil)
	_ portssvc.CalculationSvcFacade = (*calculationService)(nil)
	_ portssvc.TokenSvcFacade       = (*tokenService)(nil)
)
