package cli

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cratefetch/pkg/observability"
)

// statusHooks reports index synchronization the way Cargo does:
//
//	    Updating 'crates-io' index
//
// While git runs, a spinner is drawn when out is a terminal.
type statusHooks struct {
	out     io.Writer
	logger  *log.Logger
	animate bool

	mu      sync.Mutex
	spinner *Spinner
}

func newStatusHooks(out io.Writer, logger *log.Logger) *statusHooks {
	return &statusHooks{out: out, logger: logger, animate: isTerminal(out)}
}

func (h *statusHooks) OnSyncStart(ctx context.Context, action, registry string) {
	printStatus(h.out, action, "'%s' index", registry)
	if !h.animate {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.spinner = newSpinnerWithContext(ctx, h.out, "fetching")
	h.spinner.Start()
}

func (h *statusHooks) OnSyncComplete(_ context.Context, action, registry string, d time.Duration, err error) {
	h.mu.Lock()
	if h.spinner != nil {
		h.spinner.Stop()
		h.spinner = nil
	}
	h.mu.Unlock()

	if err != nil {
		h.logger.Debug("index sync failed", "registry", registry, "action", action, "duration", d, "err", err)
		return
	}
	h.logger.Debug("index synchronized", "registry", registry, "action", action, "duration", d.Round(time.Millisecond))
}

func (h *statusHooks) OnLookup(_ context.Context, name, matched string, versions int, d time.Duration, err error) {
	h.logger.Debug("index lookup", "name", name, "matched", matched, "versions", versions, "duration", d.Round(time.Microsecond), "err", err)
}

var _ observability.IndexHooks = (*statusHooks)(nil)
