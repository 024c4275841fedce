package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/tinymart/internal/cart"
	"github.com/rogerio-castellano/tinymart/internal/config"
	"github.com/rogerio-castellano/tinymart/internal/logging"
	"github.com/rogerio-castellano/tinymart/internal/models"
	"github.com/rogerio-castellano/tinymart/internal/presenter"
	"github.com/rogerio-castellano/tinymart/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// session is what every command needs: settings, a logger and a filled catalog.
type session struct {
	cfg     config.Config
	log     *logrus.Logger
	catalog *repo.InMemoryProductRepository
	sample  *repo.Sample // nil when the catalog comes from a seed file
}

func setup(cmd *cli.Command, stderr io.Writer) (*session, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("output") {
		cfg.Output = cmd.String("output")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:     cfg,
		log:     logger,
		catalog: repo.NewInMemoryProductRepository(logger),
	}

	if cfg.Catalog.Seed == "" {
		sample := repo.SampleCatalog(s.catalog)
		s.sample = &sample
		return s, nil
	}

	f, err := os.Open(cfg.Catalog.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	result, err := s.catalog.ImportYAML(f, cfg.ImportMode())
	if err != nil {
		return nil, err
	}
	for _, e := range result.Errors {
		logger.WithField("row", e.Row).Warn(e.Description)
	}
	logger.WithField("imported", result.Imported).Debug("catalog seeded")
	return s, nil
}

func (s *session) cartOrder() ([]models.Product, error) {
	if s.sample != nil {
		return s.sample.CartOrder(), nil
	}
	return s.catalog.GetAll()
}

func runDemo(stdout, stderr io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		s, err := setup(cmd, stderr)
		if err != nil {
			return err
		}

		out, err := presenter.New(s.cfg.Output, stdout)
		if err != nil {
			return err
		}

		myCart := cart.New(s.cfg.OwnerName(), cart.WithLogger(s.log))

		products, err := s.cartOrder()
		if err != nil {
			return err
		}
		for i, p := range products {
			ok := myCart.AddItem(p)
			entry := s.log.WithField("product_id", p.ID())
			if ok {
				entry.Debugf("Adding item %d successful? %t", i+1, ok)
			} else {
				entry.Infof("Adding item %d successful? %t", i+1, ok)
			}
		}

		for _, name := range cmd.StringSlice("remove") {
			p, err := s.catalog.GetByName(name)
			if err != nil {
				s.log.WithField("name", name).Warnf("cannot remove: %v", err)
				continue
			}
			myCart.RemoveItem(p.ID())
		}

		return myCart.Display(out)
	}
}

func runCatalog(stdout, stderr io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		s, err := setup(cmd, stderr)
		if err != nil {
			return err
		}

		var pf repo.ProductFilter
		pf.Name = cmd.String("name")
		if cmd.IsSet("kind") {
			k, err := models.ParseKind(cmd.String("kind"))
			if err != nil {
				return err
			}
			pf.Kind = &k
		}
		if cmd.IsSet("min-price") {
			v, err := decimal.NewFromString(cmd.String("min-price"))
			if err != nil {
				return fmt.Errorf("invalid --min-price: %w", err)
			}
			pf.MinPrice = &v
		}
		if cmd.IsSet("max-price") {
			v, err := decimal.NewFromString(cmd.String("max-price"))
			if err != nil {
				return fmt.Errorf("invalid --max-price: %w", err)
			}
			pf.MaxPrice = &v
		}

		if cmd.Bool("new-releases") {
			newSince := s.cfg.NewReleaseYear
			if cmd.IsSet("new-since") {
				newSince = int(cmd.Int("new-since"))
			}
			pf.NewSince = &newSince
		}
		if cmd.IsSet("offset") {
			offset := int(cmd.Int("offset"))
			pf.Offset = &offset
		}
		if cmd.IsSet("limit") {
			limit := int(cmd.Int("limit"))
			pf.Limit = &limit
		}

		products, total, err := s.catalog.Filter(pf)
		if err != nil {
			return err
		}

		items := make([]models.Description, 0, len(products))
		for _, p := range products {
			items = append(items, models.Describe(p))
		}
		return presenter.WriteListing(s.cfg.Output, stdout, items, total)
	}
}

func runStats(stdout, stderr io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		s, err := setup(cmd, stderr)
		if err != nil {
			return err
		}

		newSince := s.cfg.NewReleaseYear
		if cmd.IsSet("new-since") {
			newSince = int(cmd.Int("new-since"))
		}

		m, err := repo.NewInMemoryMetricsRepository(s.catalog).GetCatalogMetrics(newSince)
		if err != nil {
			return err
		}
		return presenter.WriteMetrics(s.cfg.Output, stdout, m)
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "tinymart",
		Usage:     "retail catalog and bounded shopping cart",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "report format: text, json or yaml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "fill a cart past capacity, remove items and print the report",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "remove",
						Usage: "names of the products to remove after filling the cart",
						Value: []string{"Harry Potter", "Like a Prayer"},
					},
				},
				Action: runDemo(stdout, stderr),
			},
			{
				Name:  "catalog",
				Usage: "list catalog products",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Usage: "Music, Movie, E-Book or Paper Book"},
					&cli.StringFlag{Name: "name", Usage: "case-insensitive name fragment"},
					&cli.StringFlag{Name: "min-price"},
					&cli.StringFlag{Name: "max-price"},
					&cli.BoolFlag{Name: "new-releases", Usage: "only movies released in --new-since or later"},
					&cli.IntFlag{Name: "new-since", Usage: "release year threshold (defaults to new_release_year)"},
					&cli.IntFlag{Name: "offset", Usage: "number of matching products to skip"},
					&cli.IntFlag{Name: "limit", Usage: "maximum number of products to list (0 lists all)"},
				},
				Action: runCatalog(stdout, stderr),
			},
			{
				Name:  "stats",
				Usage: "print catalog metrics",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "new-since", Usage: "release year threshold (defaults to new_release_year)"},
				},
				Action: runStats(stdout, stderr),
			},
		},
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newApp(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
