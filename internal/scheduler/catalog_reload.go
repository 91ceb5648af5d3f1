package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/makerhub/internal/catalog"
	"github.com/MrSnakeDoc/makerhub/internal/logger"
)

// CatalogReloader periodically re-reads the catalog file and swaps it into
// the holder. A bad file keeps the previous catalog in service.
type CatalogReloader struct {
	loader        *catalog.Loader // nil when only the built-in catalog is used
	holder        *catalog.Holder
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a reloader. An empty catalogFile serves the
// built-in catalog and ignores the interval.
func NewCatalogReloader(
	catalogFile string,
	holder *catalog.Holder,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	var loader *catalog.Loader
	if catalogFile != "" {
		loader = catalog.NewLoader(catalogFile)
	}
	return &CatalogReloader{
		loader:        loader,
		holder:        holder,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the catalog once, then keeps it fresh in the background.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	// Only a file can change, the built-in catalog waits for manual triggers.
	var ticker *time.Ticker
	if cr.loader != nil && cr.interval > 0 {
		ticker = time.NewTicker(cr.interval)
	}
	go cr.loop(ctx, ticker)
	return nil
}

func (cr *CatalogReloader) loop(ctx context.Context, ticker *time.Ticker) {
	var tick <-chan time.Time
	if ticker != nil {
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-tick:
			cr.reloadLogged(ctx)
		case <-cr.manualTrigger:
			cr.logger.Info("manual catalog reload triggered")
			cr.reloadLogged(ctx)
		case <-cr.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (cr *CatalogReloader) reloadLogged(ctx context.Context) {
	if err := cr.Reload(ctx); err != nil {
		cr.logger.Error("failed to reload catalog, keeping previous one",
			logger.Error(err))
	}
}

// Stop stops the background loop. Safe to call more than once.
func (cr *CatalogReloader) Stop() {
	cr.stopOnce.Do(func() { close(cr.stopCh) })
}

// Reload reads the catalog file and publishes it. Without a file it
// republishes the built-in catalog.
func (cr *CatalogReloader) Reload(_ context.Context) error {
	if cr.loader == nil {
		cr.holder.Update(catalog.Default())
		cr.logger.Debug("no catalog file configured, serving built-in catalog")
		return nil
	}

	cr.logger.Info("reloading catalog", logger.String("file", cr.loader.Path()))
	c, err := cr.loader.Load()
	if err != nil {
		return err
	}
	cr.holder.Update(c)

	cr.logger.Info("catalog loaded",
		logger.Int("courses", len(c.Courses)),
		logger.Int("products", len(c.Products)),
		logger.Int("ranks", len(c.Ranks)),
		logger.Int("badges", len(c.Badges)))
	return nil
}
