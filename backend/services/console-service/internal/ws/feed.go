package ws

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"aether/backend/services/console-service/internal/metrics"
	"aether/backend/services/console-service/internal/models"
	"aether/backend/services/console-service/internal/service"
)

const (
	writeTimeout = 5 * time.Second

	// Random-walk parameters for the simulated live feed.
	walkStep       = 0.8
	spikeChance    = 0.02
	spikeMagnitude = 12.0
)

// Feed streams live forecaster assessments over WebSocket. Each connection
// gets its own rolling window: seeded from the historical feed when
// available, otherwise from the configured baseline, then advanced by a
// simulated random walk every tick.
type Feed struct {
	svc      *service.ConsoleService
	window   int
	baseline float64
	interval time.Duration
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewFeed builds the feed server.
func NewFeed(svc *service.ConsoleService, window int, baseline float64, interval time.Duration, logger *zap.Logger) *Feed {
	if interval <= 0 {
		interval = time.Second
	}
	return &Feed{
		svc:      svc,
		window:   window,
		baseline: baseline,
		interval: interval,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

type feedFrame struct {
	Reading    float64           `json:"reading"`
	Assessment models.Assessment `json:"assessment"`
	Timestamp  time.Time         `json:"timestamp"`
}

// HandleWS is the HTTP handler for /feed/ws.
func (f *Feed) HandleWS(w http.ResponseWriter, r *http.Request) {
	if f.window <= 0 {
		http.Error(w, "forecaster unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	// Not derived from the request context: the handler returns right away
	// while the stream keeps running on the hijacked connection.
	ctx, cancel := context.WithCancel(context.Background())
	metrics.FeedConnections.Inc()
	f.logger.Info("feed client connected", zap.String("remote", conn.RemoteAddr().String()))

	// Read pump: the client never sends data, but reading surfaces closes.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go f.stream(ctx, cancel, conn)
}

func (f *Feed) stream(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn) {
	defer func() {
		cancel()
		conn.Close()
		metrics.FeedConnections.Dec()
		f.logger.Info("feed client disconnected", zap.String("remote", conn.RemoteAddr().String()))
	}()

	window := f.seedWindow(ctx)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reading := f.nextReading(rng, window[len(window)-1])
			window = append(window[1:], reading)

			result, err := f.svc.ForecastTrend(ctx, service.ForecastInput{Readings: window})
			if err != nil {
				f.logger.Warn("feed assessment failed", zap.Error(err))
				return
			}

			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(feedFrame{
				Reading:    reading,
				Assessment: result,
				Timestamp:  time.Now().UTC(),
			}); err != nil {
				return
			}
		}
	}
}

// seedWindow primes the rolling window from the historical feed when it is
// available, falling back to a flat baseline.
func (f *Feed) seedWindow(ctx context.Context) []float64 {
	window := make([]float64, f.window)
	for i := range window {
		window[i] = f.baseline
	}

	history, err := f.svc.History(ctx, f.window)
	if err != nil || len(history) == 0 {
		return window
	}
	for i, snap := range history {
		if i >= f.window {
			break
		}
		window[i] = snap.Temperature
	}
	return window
}

func (f *Feed) nextReading(rng *rand.Rand, last float64) float64 {
	next := last + (rng.Float64()*2-1)*walkStep
	if rng.Float64() < spikeChance {
		next += spikeMagnitude
	}
	if next < models.MinCalibratedTemp {
		next = models.MinCalibratedTemp
	}
	if next > models.MaxCalibratedTemp {
		next = models.MaxCalibratedTemp
	}
	return next
}
