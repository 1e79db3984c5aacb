package cmd

import (
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"blogs-api/bootstrap"
	"blogs-api/config"
	"blogs-api/database"
	"blogs-api/internal/repository"
	"blogs-api/internal/repository/memory"
	"blogs-api/internal/server"
	"blogs-api/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func addServeFlags(c *cobra.Command) {
	c.Flags().String("port", "", "listen port (overrides PORT)")
	c.Flags().Bool("in-memory", false, "keep data in process memory instead of MongoDB")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	out := utils.LogWriter(cfg.LogFile)
	log.SetOutput(out)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := server.Options{Config: cfg, AccessLog: out}
	if inMemory, _ := cmd.Flags().GetBool("in-memory"); inMemory {
		log.Warn("using in-memory store; data is lost on exit")
		opts.Blogs = memory.NewBlogStore()
		opts.Users = memory.NewUserStore()
	} else {
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return err
		}
		defer database.DisconnectMongo(client)

		if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
			return errors.Wrap(err, "ensure indexes failed")
		}
		opts.Blogs = repository.NewBlogRepository(db)
		opts.Users = repository.NewUserRepository(db)
	}

	app := server.New(opts)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	log.Infof("listening at http://localhost:%s", cfg.Port)
	return app.Listen(":" + cfg.Port)
}
