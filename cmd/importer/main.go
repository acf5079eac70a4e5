package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	appMigrations "github.com/yigit/eamcet-predictor/internal/app/migrations"
	"github.com/yigit/eamcet-predictor/internal/app/models"
	appRepos "github.com/yigit/eamcet-predictor/internal/app/repositories"
	appServices "github.com/yigit/eamcet-predictor/internal/app/services"
	"github.com/yigit/eamcet-predictor/internal/config"
	"github.com/yigit/eamcet-predictor/internal/db"
	"github.com/yigit/eamcet-predictor/internal/importer"
	"github.com/yigit/eamcet-predictor/internal/pkg/cache"
	"github.com/yigit/eamcet-predictor/internal/pkg/logger"
)

func main() {
	file := flag.String("file", "", "data file to import (.xlsx or .json)")
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to config.yaml")
	dryRun := flag.Bool("dry-run", false, "parse and summarize without writing")
	flag.Parse()

	if *file == "" {
		color.Red("-file is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*file, *configPath, *dryRun); err != nil {
		color.Red("Import failed: %v", err)
		os.Exit(1)
	}
}

func run(file, configPath string, dryRun bool) error {
	color.Cyan("\n=== EAMCET data import ===")

	res, err := importer.Load(file)
	if err != nil {
		return err
	}
	printSummary(res)

	if dryRun {
		color.Yellow("Dry run, nothing written")
		return nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger.Configure(logger.Config{Level: logger.LogLevel(strings.ToLower(cfg.Logging.Level)), Pretty: true})

	if strings.ToLower(cfg.Database.Driver) == "memory" {
		return fmt.Errorf("the memory driver loads %s at startup, nothing to import into", cfg.Data.SeedFile)
	}

	database, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := appMigrations.NewMigrator(database).MigrateFromDirectory(ctx, cfg.Data.MigrationsDir); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}

	repos := appRepos.NewRepositories(database)
	written, err := repos.CollegeRepository.SaveAll(ctx, res.Colleges)
	if err != nil {
		return err
	}
	color.Green("Upserted %d rows into %s", written, cfg.Database.Driver)

	if cfg.Cache.Enabled {
		invalidateAnalytics(ctx, cfg, repos)
	}
	return nil
}

// invalidateAnalytics drops the aggregates a running API may have cached
func invalidateAnalytics(ctx context.Context, cfg *config.Config, repos *appRepos.Repositories) {
	redisCache, err := cache.NewRedisCache(ctx, cache.RedisOptions{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err != nil {
		color.Yellow("Redis unavailable, analytics cache not invalidated: %v", err)
		return
	}
	defer redisCache.Close()

	analytics := appServices.NewAnalyticsService(repos.CollegeRepository, redisCache, appServices.DefaultSettings())
	if err := analytics.InvalidateCache(ctx); err != nil {
		color.Yellow("Failed to invalidate analytics cache: %v", err)
		return
	}
	color.Green("Analytics cache invalidated")
}

func printSummary(res *importer.Result) {
	instcodes := make(map[string]struct{})
	branches := make(map[string]struct{})
	tiers := make(map[string]int)
	for _, c := range res.Colleges {
		instcodes[c.Instcode] = struct{}{}
		branches[c.Branch] = struct{}{}
		tiers[c.Tier]++
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Rows", strconv.Itoa(len(res.Colleges))})
	table.Append([]string{"Skipped rows", strconv.Itoa(res.Skipped)})
	table.Append([]string{"Institutions", strconv.Itoa(len(instcodes))})
	table.Append([]string{"Branches", strconv.Itoa(len(branches))})
	table.Render()

	tierNames := make([]string, 0, len(tiers))
	for t := range tiers {
		tierNames = append(tierNames, t)
	}
	sort.Slice(tierNames, func(i, j int) bool {
		ri, rj := models.TierRank(tierNames[i]), models.TierRank(tierNames[j])
		if ri != rj {
			return ri < rj
		}
		return tierNames[i] < tierNames[j]
	})

	color.Yellow("\nRows per tier")
	tierTable := tablewriter.NewWriter(os.Stdout)
	tierTable.SetHeader([]string{"Tier", "Rows"})
	for _, t := range tierNames {
		label := t
		if label == "" {
			label = "(none)"
		}
		tierTable.Append([]string{label, strconv.Itoa(tiers[t])})
	}
	tierTable.Render()

	if res.Skipped > 0 {
		color.Yellow("%d rows skipped for a missing id, instcode or branch", res.Skipped)
	}
}
