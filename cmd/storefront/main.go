package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"music-storefront/internal/config"
	"music-storefront/internal/pkg/i18n"
	"music-storefront/internal/repository"
	"music-storefront/internal/shopapi"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Music instrument storefront backend",
	Long: `Backend for the music instrument storefront.

It serves the browser-facing API and talks to the shop API for products,
comments, carts and orders.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load .env: %w", err)
		}

		cfg = config.Load()

		var err error
		logger, err = config.NewLogger(cfg)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}

		if err := i18n.Load(cfg.DefaultLocale); err != nil {
			return fmt.Errorf("load translations: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(commentsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newShopClient() (*shopapi.Client, error) {
	return shopapi.NewClient(shopapi.Options{
		BaseURL:  cfg.ShopAPIURL,
		Timeout:  cfg.ShopAPITimeout,
		RetryMax: cfg.ShopAPIRetries,
	}, logger.Named("shopapi"))
}

func newCommentRepository() (repository.CommentRepository, error) {
	api, err := newShopClient()
	if err != nil {
		return nil, err
	}
	return repository.NewCommentRepository(api), nil
}
