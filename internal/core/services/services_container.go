package services

import (
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	portssvc "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/services"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, quotes portssvc.QuoteProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Salary = NewSalaryService(repos.SalaryRepo)
	container.Income = NewIncomeService(repos.IncomeRepo)

	// Expense writes the derived cashback income, so it also needs the
	// income repository.
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.IncomeRepo)

	container.Exchange = NewExchangeService(repos.ExchangeRepo)
	container.Investment = NewInvestmentService(repos.InvestmentRepo, quotes)
	container.Inflation = NewInflationService(repos.InflationRepo)

	container.Reporting = NewReportingService(
		repos.SalaryRepo,
		repos.IncomeRepo,
		repos.ExpenseRepo,
		repos.InvestmentRepo,
		repos.BalanceRepo,
		quotes,
	)

	container.User = NewUserService(repos.UserRepo)

	// Token issuing needs the user service to persist refresh token state.
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleAuth = NewGoogleOAuthService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade       = (*tokenService)(nil)
	_ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)
)
