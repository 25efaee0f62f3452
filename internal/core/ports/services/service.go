package services

// ServiceContainer holds instances of all the application services.
// Handlers and the CLI reach service functionality through it.
type ServiceContainer struct {
	Pronunciation PronunciationSvc
	Calculation   CalculationSvcFacade
	TokenService  TokenSvcFacade
}
