package pgsql

import (
	portsrepo "github.com/anonmateratzi/bolsillo-digital-pro/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	salaryRepo := newPgxSalaryRepository(dbPool)
	incomeRepo := newPgxIncomeRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	exchangeRepo := newPgxExchangeRepository(dbPool)
	investmentRepo := newPgxInvestmentRepository(dbPool)
	inflationRepo := newPgxInflationRepository(dbPool)
	balanceRepo := newPgxBalanceRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SalaryRepo:     salaryRepo,
		IncomeRepo:     incomeRepo,
		ExpenseRepo:    expenseRepo,
		ExchangeRepo:   exchangeRepo,
		InvestmentRepo: investmentRepo,
		InflationRepo:  inflationRepo,
		BalanceRepo:    balanceRepo,
		UserRepo:       userRepo,
	}
}
