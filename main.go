package main

import (
	"flag"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/btsscan/platform/config"
	"github.com/btsscan/platform/connections"
	"github.com/btsscan/platform/controllers"
	"github.com/btsscan/platform/logger"
	"github.com/btsscan/platform/routes"
	"github.com/btsscan/platform/signals"
)

func main() {
	configFile := flag.String("config", ".env", "Environment config file")
	flag.Parse()

	config.EnvLoad(*configFile)
	logger.New()

	connections.NewNodeClient()
	go connections.MonitorNodeConnection()

	controllers.Init()

	e := echo.New()
	e.HideBanner = true
	routes.Add(e)

	signals.HandleAll()
	serverAddress := fmt.Sprintf("%s:%s", config.EnvServerHost(), config.EnvServerPort())
	e.Logger.Fatal(e.Start(serverAddress))
}
