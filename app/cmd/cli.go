package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/mwidyarto/go-commerce-api/app/configs"
	"github.com/mwidyarto/go-commerce-api/app/db/seeders"
	"github.com/mwidyarto/go-commerce-api/app/models/migrations"
)

func RunCli(log *logrus.Logger) {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the catalog with sample categories and products",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.Seed(ctx, db, log); err != nil {
						return err
					}
					log.Info("seeding complete")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
