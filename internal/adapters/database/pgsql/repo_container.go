package pgsql

import (
	portsrepo "github.com/SscSPs/money_counter/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the same querier, usually a *pgxpool.Pool.
func NewRepositoryProvider(q Querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CalculationRepo: NewPgxCalculationRepository(q),
	}
}
