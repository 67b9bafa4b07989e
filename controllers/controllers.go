package controllers

import (
	"github.com/btsscan/platform/config"
	"github.com/btsscan/platform/connections"
	"github.com/btsscan/platform/resolver"
	"github.com/btsscan/platform/visualizer"
)

var (
	viz *visualizer.Visualizer
	res *resolver.Resolver
)

// Init wires the controllers to the process-wide node client. Must run after
// connections.NewNodeClient.
func Init() {
	var opts []resolver.Option
	if config.EnvNetworkIsTestnet() {
		opts = append(opts, resolver.Testnet())
	}
	viz = visualizer.New(connections.Node, opts...)
	res = resolver.New(connections.Node, opts...)
}
