package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the CLI commands and the HTTP handlers.
type ServiceContainer struct {
	Currency CurrencySvcFacade
	Change   ChangeSvc
	Batch    BatchSvc
}
