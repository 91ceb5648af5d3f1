package deps

import (
	"time"

	"github.com/MrSnakeDoc/makerhub/internal/catalog"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/mw"
	"github.com/MrSnakeDoc/makerhub/internal/logger"
	"github.com/MrSnakeDoc/makerhub/internal/persist"
	"github.com/MrSnakeDoc/makerhub/internal/session"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	RequestTimeout time.Duration      // per-request deadline
	AllowedHosts   []string           // Host headers allowed to reach /api and /reload
	AllowedCIDRS   []string           // IPs allowed to reach /readyz, /infra and /reload
	TrustProxy     bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CORSOrigins    []string           // browser origins allowed to call /api
	RateLimit      mw.RateLimitConfig // per-IP limits on /api
	Session        *session.Store     // the session every /api route acts on
	Catalog        *catalog.Holder    // current reference data
	Slot           persist.Slot       // where the session is persisted
	ReloadTrigger  chan struct{}      // manual catalog reload
}
