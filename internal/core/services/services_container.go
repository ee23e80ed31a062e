package services

import (
	portsrepo "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/services"
	"github.com/SscSPs/krw_rates_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The selection service reads through the dataset service's cache.
	container.Dataset = NewDatasetService(repos.RawTableRepo)
	container.Selection = NewSelectionService(
		container.Dataset,
		WithDefaultCurrencyMarker(cfg.DefaultCurrencyMarker),
	)

	return container
}
