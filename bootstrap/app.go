package bootstrap

import (
	"github.com/soundvault/soundvault-backend/logger"
	"github.com/soundvault/soundvault-backend/mongo"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
}

func App() Application {
	app := Application{}
	app.Env = NewEnv()

	logger.Init(logger.Config{
		Level:      app.Env.LogLevel,
		OutputPath: app.Env.LogPath,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	})

	app.Mongo = NewMongoDatabase(app.Env)
	mongo.CreateIndexes(app.Mongo.Database(app.Env.DBName))
	return app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
