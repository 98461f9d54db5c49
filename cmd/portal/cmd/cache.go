package cmd

import (
	"fmt"

	"council-portal-api/internal/cache"
	"council-portal-api/internal/config"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or reset the read cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached collection",
	Long:  "Only useful with the bolt backend; the memory cache lives inside a running server.",
	RunE:  runCacheClear,
}

var cacheKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the keys held by the bolt cache",
	RunE:  runCacheKeys,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheKeysCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := openApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.content.InvalidateAll(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
	return nil
}

func runCacheKeys(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Cache.Backend != config.CacheBolt {
		return fmt.Errorf("cache keys needs the bolt backend, got %q", cfg.Cache.Backend)
	}
	store, err := cache.OpenBoltStore(cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	keys, err := store.Keys(cfg.Cache.Prefix)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(cmd.OutOrStdout(), k)
	}
	return nil
}
