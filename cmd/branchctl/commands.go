package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/bootstrap"
	"github.com/branch-finder/internal/config"
	"github.com/branch-finder/internal/pkg/logger"
	"github.com/branch-finder/internal/pkg/validator"
	"github.com/branch-finder/internal/repository/cache"
	"github.com/branch-finder/internal/repository/memory"
	"github.com/branch-finder/internal/repository/postgres"
	"github.com/branch-finder/internal/usecase"
	"github.com/branch-finder/internal/usecase/dto"
)

var errCacheDisabled = stderrors.New("response cache is disabled, set REDIS_ENABLED=true")

// session holds the use cases a command runs against. Responses are never cached.
type session struct {
	search    *usecase.SearchUseCase
	location  *usecase.LocationUseCase
	reference *usecase.ReferenceUseCase
	logger    *zap.Logger
	close     func()
}

func loadConfig(c *cli.Command) (*config.Config, error) {
	cfg, err := config.LoadFile(c.String("env-file"))
	if err != nil {
		return nil, err
	}
	if mode := c.String("provider"); mode != "" {
		cfg.Provider.Mode = strings.ToLower(mode)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openSession(ctx context.Context, c *cli.Command) (*session, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.NewCLI(c.Bool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	provider, err := bootstrap.NewLocationProvider(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("creating provider: %w", err)
	}

	catalog, err := usecase.LoadFacilityCatalog(ctx, provider)
	if err != nil {
		_ = provider.Close()
		return nil, fmt.Errorf("loading facility catalog: %w", err)
	}

	return &session{
		search:    usecase.NewSearchUseCase(provider, catalog, cache.NoopCache{}, log, 0),
		location:  usecase.NewLocationUseCase(provider, cache.NoopCache{}, log, 0),
		reference: usecase.NewReferenceUseCase(provider, log),
		logger:    log,
		close: func() {
			if err := provider.Close(); err != nil {
				log.Warn("Failed to close provider", zap.Error(err))
			}
			_ = log.Sync()
		},
	}, nil
}

// withSession opens a session around fn.
func withSession(fn func(ctx context.Context, c *cli.Command, s *session) error) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		s, err := openSession(ctx, c)
		if err != nil {
			return err
		}
		defer s.close()
		return fn(ctx, c, s)
	}
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search branches and ATMs around a coordinate",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "lat", Usage: "Latitude of the search center", Required: true},
			&cli.FloatFlag{Name: "lon", Usage: "Longitude of the search center", Required: true},
			&cli.FloatFlag{Name: "radius", Usage: "Search radius in km", Value: dto.DefaultRadiusKm},
			&cli.StringFlag{Name: "type", Usage: "ATM, BRANCH or SELF_SERVICE"},
			&cli.BoolFlag{Name: "open-now", Usage: "Only locations open right now"},
			&cli.StringFlag{Name: "facilities", Usage: "Comma-separated facility ids"},
			&cli.IntFlag{Name: "limit", Usage: "Maximum number of results", Value: dto.DefaultLimit},
		},
		Action: withSession(func(ctx context.Context, c *cli.Command, s *session) error {
			req, err := searchRequestFromFlags(c)
			if err != nil {
				return err
			}
			if err := validator.Validate(req); err != nil {
				return err
			}
			resp, err := s.search.Search(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(resp)
		}),
	}
}

func searchRequestFromFlags(c *cli.Command) (dto.SearchRequest, error) {
	lat, lon := c.Float("lat"), c.Float("lon")
	radius := c.Float("radius")
	limit := c.Int("limit")
	openNow := c.Bool("open-now")

	req := dto.SearchRequest{
		Latitude:  &lat,
		Longitude: &lon,
		RadiusKm:  &radius,
		TypeGroup: strings.ToUpper(c.String("type")),
		OpenNow:   &openNow,
		Limit:     &limit,
	}

	if raw := c.String("facilities"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil {
				return req, fmt.Errorf("invalid facility id %q", part)
			}
			req.Facilities = append(req.Facilities, id)
		}
	}
	return req, nil
}

func detailCommand() *cli.Command {
	return &cli.Command{
		Name:      "detail",
		Usage:     "Show the full record of a location",
		ArgsUsage: "<id>",
		Action: withSession(func(ctx context.Context, c *cli.Command, s *session) error {
			id, err := strconv.ParseInt(c.Args().First(), 10, 64)
			if err != nil {
				return fmt.Errorf("location id must be an integer: %q", c.Args().First())
			}
			detail, err := s.location.GetDetail(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(detail)
		}),
	}
}

func facilitiesCommand() *cli.Command {
	return &cli.Command{
		Name:  "facilities",
		Usage: "List the facility catalog",
		Action: withSession(func(ctx context.Context, c *cli.Command, s *session) error {
			resp, err := s.reference.ListFacilities(ctx)
			if err != nil {
				return err
			}
			return printJSON(resp)
		}),
	}
}

func objectTypesCommand() *cli.Command {
	return &cli.Command{
		Name:  "object-types",
		Usage: "List object types",
		Action: withSession(func(ctx context.Context, c *cli.Command, s *session) error {
			resp, err := s.reference.ListObjectTypes(ctx)
			if err != nil {
				return err
			}
			return printJSON(resp)
		}),
	}
}

func configurationCommand() *cli.Command {
	return &cli.Command{
		Name:  "configuration",
		Usage: "Show the region configuration",
		Action: withSession(func(ctx context.Context, c *cli.Command, s *session) error {
			resp, err := s.reference.GetConfiguration(ctx)
			if err != nil {
				return err
			}
			return printJSON(resp)
		}),
	}
}

// demoCommand runs every operation once against fixed Mainz inputs.
func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Run every operation once and print the results",
		Action: withSession(func(ctx context.Context, c *cli.Command, s *session) error {
			lat, lon, limit := 49.9929, 8.2473, 2
			steps := []struct {
				title string
				run   func() (interface{}, error)
			}{
				{"search", func() (interface{}, error) {
					return s.search.Search(ctx, dto.SearchRequest{
						Latitude: &lat, Longitude: &lon, TypeGroup: "BRANCH", Limit: &limit,
					})
				}},
				{"detail 12001", func() (interface{}, error) { return s.location.GetDetail(ctx, 12001) }},
				{"facilities", func() (interface{}, error) { return s.reference.ListFacilities(ctx) }},
				{"object-types", func() (interface{}, error) { return s.reference.ListObjectTypes(ctx) }},
				{"configuration", func() (interface{}, error) { return s.reference.GetConfiguration(ctx) }},
			}

			for _, step := range steps {
				fmt.Printf("== %s\n", step.title)
				result, err := step.run()
				if err != nil {
					return fmt.Errorf("%s: %w", step.title, err)
				}
				if err := printJSON(result); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

// seedCommand copies the built-in dataset into the configured Postgres database.
func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load the built-in Mainz dataset into Postgres",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			log, err := logger.NewCLI(c.Bool("debug"))
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer log.Sync()

			db, err := postgres.New(&cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(ctx); err != nil {
				return err
			}

			data, err := memorySeedData(ctx)
			if err != nil {
				return err
			}
			if err := db.Seed(ctx, data); err != nil {
				return err
			}

			fmt.Printf("seeded %d locations, %d facilities, %d object types\n",
				len(data.Locations), len(data.Facilities), len(data.ObjectTypes))
			return nil
		},
	}
}

// purgeCacheCommand drops the cached responses of this service from Redis.
func purgeCacheCommand() *cli.Command {
	return &cli.Command{
		Name:  "purge-cache",
		Usage: "Delete cached search and detail responses from Redis",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cfg.Redis.Enabled {
				return errCacheDisabled
			}
			log, err := logger.NewCLI(c.Bool("debug"))
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer log.Sync()

			r, err := cache.NewRedis(&cfg.Redis, log)
			if err != nil {
				return err
			}
			defer r.Close()

			removed, err := r.Purge(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("removed %d cached responses\n", removed)
			return nil
		},
	}
}

func memorySeedData(ctx context.Context) (postgres.SeedData, error) {
	src := memory.NewProvider()

	locations, err := src.FindCandidates(ctx, 0, 0)
	if err != nil {
		return postgres.SeedData{}, err
	}
	facilities, err := src.ListFacilities(ctx)
	if err != nil {
		return postgres.SeedData{}, err
	}
	objectTypes, err := src.ListObjectTypes(ctx)
	if err != nil {
		return postgres.SeedData{}, err
	}
	cfg, err := src.GetConfiguration(ctx)
	if err != nil {
		return postgres.SeedData{}, err
	}

	return postgres.SeedData{
		Locations:     locations,
		Facilities:    facilities,
		ObjectTypes:   objectTypes,
		Configuration: cfg,
	}, nil
}
