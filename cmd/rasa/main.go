package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rasalabs/rasa/internal/profile"
	"github.com/rasalabs/rasa/server"
	"github.com/rasalabs/rasa/store"
	"github.com/rasalabs/rasa/store/db"
)

const (
	greetingBanner = `rasa - local ayurvedic assistant`
)

var (
	version = "0.1.0"

	rootCmd = &cobra.Command{
		Use:   "rasa",
		Short: "An Ayurvedic wellness assistant server",
		Run: func(_ *cobra.Command, _ []string) {
			instanceProfile := &profile.Profile{
				Mode:    viper.GetString("mode"),
				Addr:    viper.GetString("addr"),
				Port:    viper.GetInt("port"),
				Data:    viper.GetString("data"),
				Driver:  viper.GetString("driver"),
				DSN:     viper.GetString("dsn"),
				Secret:  viper.GetString("secret"),
				Version: version,
			}
			instanceProfile.FromEnv()
			if err := instanceProfile.Validate(); err != nil {
				slog.Error("invalid configuration", slog.String("error", err.Error()))
				os.Exit(1)
			}

			setupLogger(instanceProfile)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			dbDriver, err := db.NewDBDriver(instanceProfile)
			if err != nil {
				slog.Error("failed to create db driver", slog.String("error", err.Error()))
				os.Exit(1)
			}

			storeInstance := store.New(dbDriver, instanceProfile)
			if err := storeInstance.Migrate(ctx); err != nil {
				slog.Error("failed to migrate knowledge base", slog.String("error", err.Error()))
				os.Exit(1)
			}

			s, err := server.NewServer(ctx, instanceProfile, storeInstance)
			if err != nil {
				slog.Error("failed to create server", slog.String("error", err.Error()))
				os.Exit(1)
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				sig := <-sigCh
				slog.Info("received signal, shutting down", slog.String("signal", sig.String()))
				s.Shutdown(ctx)
				cancel()
			}()

			fmt.Println(greetingBanner)
			fmt.Printf("version %s, mode %s, listening on %s\n", version, instanceProfile.Mode, instanceProfile.Address())

			if err := s.Start(ctx); err != nil {
				slog.Error("failed to start server", slog.String("error", err.Error()))
				cancel()
			}

			<-ctx.Done()
		},
	}
)

func setupLogger(p *profile.Profile) {
	level := slog.LevelInfo
	if p.IsDev() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func init() {
	viper.SetDefault("mode", "demo")
	viper.SetDefault("addr", "")
	viper.SetDefault("port", 8000)
	viper.SetDefault("data", ".")
	viper.SetDefault("driver", "sqlite")

	rootCmd.PersistentFlags().String("mode", "demo", `mode of the server, can be "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8000, "port of the server")
	rootCmd.PersistentFlags().String("data", ".", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver")
	rootCmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")
	rootCmd.PersistentFlags().String("secret", "", "secret used to sign auth tokens")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("rasa")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
