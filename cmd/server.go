package cmd

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soundvault/soundvault-backend/api/route"
	"github.com/soundvault/soundvault-backend/bootstrap"
	"github.com/soundvault/soundvault-backend/logger"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer() {
	app := bootstrap.App()
	defer app.CloseDBConnection()
	defer logger.Sync()

	env := app.Env
	db := app.Mongo.Database(env.DBName)
	timeout := time.Duration(env.ContextTimeout) * time.Second

	if env.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	route.Setup(env, timeout, db, engine)

	logger.L().Info("server listening", zap.String("address", env.ServerAddress))
	if err := engine.Run(env.ServerAddress); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
