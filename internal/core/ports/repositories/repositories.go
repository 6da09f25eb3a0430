package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SalaryRepo     SalaryRepositoryFacade
	IncomeRepo     IncomeRepositoryFacade
	ExpenseRepo    ExpenseRepositoryFacade
	ExchangeRepo   ExchangeRepositoryFacade
	InvestmentRepo InvestmentRepositoryFacade
	InflationRepo  InflationRepositoryFacade
	BalanceRepo    BalanceRepositoryFacade
	UserRepo       UserRepositoryFacade
}
