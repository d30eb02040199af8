//go:build wireinject

//go:generate wire

package api

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kashguard/go-btc-identity/internal/config"
	"github.com/kashguard/go-btc-identity/internal/metrics"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewCurveDomain,
	NewGenerator,
	NewDeriver,
	metricsSet,
)

var metricsSet = wire.NewSet(
	NewRegistry,
	metrics.New,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
