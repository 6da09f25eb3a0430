package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Salary     SalarySvcFacade
	Income     IncomeSvcFacade
	Expense    ExpenseSvcFacade
	Exchange   ExchangeSvcFacade
	Investment InvestmentSvcFacade
	Inflation  InflationSvcFacade
	Reporting  ReportingSvcFacade
	User       UserSvcFacade
	Token      TokenSvcFacade
	GoogleAuth GoogleOAuthSvcFacade
}
