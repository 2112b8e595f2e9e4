package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glamure/hannah/internal/profile"
	"github.com/glamure/hannah/server"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "hannah",
	Short: "Customer-support chat relay for the storefront widget",
	RunE: func(_ *cobra.Command, _ []string) error {
		p := &profile.Profile{
			Mode:               viper.GetString("mode"),
			Addr:               viper.GetString("addr"),
			Port:               viper.GetInt("port"),
			Version:            version,
			ShopifyStoreDomain: viper.GetString("shopify_store_domain"),
			ShopifyAdminToken:  viper.GetString("shopify_admin_token"),
			ShopifyAPIVersion:  viper.GetString("shopify_api_version"),
			OpenAIAPIKey:       viper.GetString("openai_api_key"),
			OpenAIBaseURL:      viper.GetString("openai_base_url"),
			ChatModel:          viper.GetString("chat_model"),
			SupportEmail:       viper.GetString("support_email"),
			MessengerURL:       viper.GetString("messenger_url"),
			RateLimitEnabled:   viper.GetBool("rate_limit_enabled"),
		}
		if err := p.Validate(); err != nil {
			return err
		}

		logger := newLogger(p)
		slog.SetDefault(logger)

		s := server.NewServer(p, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			s.Shutdown(context.Background())
			return nil
		}
	},
}

func newLogger(p *profile.Profile) *slog.Logger {
	if p.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func init() {
	rootCmd.PersistentFlags().String("mode", "dev", `mode of the server, can be "dev" or "prod"`)
	rootCmd.PersistentFlags().String("addr", "", "binding address of the server")
	rootCmd.PersistentFlags().Int("port", 5050, "binding port of the server")

	viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr"))
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))

	viper.SetDefault("shopify_api_version", "2023-04")
	viper.SetDefault("openai_base_url", "https://api.openai.com/v1")
	viper.SetDefault("chat_model", "gpt-4o")
	viper.SetDefault("rate_limit_enabled", true)

	viper.SetEnvPrefix("hannah")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
