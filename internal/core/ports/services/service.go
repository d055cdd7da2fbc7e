package services

// ServiceContainer holds all service facades used by the HTTP layer.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Ingestion   IngestionSvcFacade
	Sufficiency SufficiencySvcFacade
	Scoring     ScoringSvcFacade
	Explanation ExplanationSvcFacade
}
