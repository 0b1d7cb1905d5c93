package main

import (
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mwidyarto/go-commerce-api/app/cmd"
	"github.com/mwidyarto/go-commerce-api/app/configs"
	"github.com/mwidyarto/go-commerce-api/app/routes"
)

func main() {
	env := configs.LoadEnv()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(env.LOG_LEVEL); err == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if len(os.Args) > 1 {
		cmd.RunCli(logger)
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		logger.WithError(err).Fatal("DB connection failed")
	}
	logger.Info("database connected")

	router := routes.NewRouter(db, logger)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	logger.Infof("server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
