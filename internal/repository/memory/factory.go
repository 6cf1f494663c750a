package memory

import (
	repo "github.com/Dab1n-Lee/TDD-Study-hh/internal/repository"
)

type Repositories struct {
	Balances     repo.Balances
	Transactions repo.Transactions
	AuditLogs    repo.AuditLogs
}

func NewRepositories() Repositories {
	return Repositories{
		Balances:     NewBalancesRepo(),
		Transactions: NewTransactionsRepo(),
		AuditLogs:    NewAuditLogsRepo(),
	}
}
