package job

import (
	"sync"
	"time"

	"alert-srv/internal/alert"
	"alert-srv/internal/history"
	"alert-srv/internal/notification"
	"alert-srv/internal/settings"
	"alert-srv/internal/stock"
	"alert-srv/pkg/log"
)

type Config struct {
	Interval    time.Duration
	Concurrency int
	// DigestHour is the local hour from which the daily digest check runs.
	DigestHour int
}

// Job runs the stock monitor and maintenance recording for every organization on a ticker,
// and the weekly digest check once a day.
type Job struct {
	l            log.Logger
	stock        stock.UseCase
	alert        alert.UseCase
	history      history.UseCase
	notification notification.UseCase
	settings     settings.UseCase
	cfg          Config
	clock        func() time.Time

	mu         sync.Mutex
	lastDigest string
}

func New(
	l log.Logger,
	stockUC stock.UseCase,
	alertUC alert.UseCase,
	historyUC history.UseCase,
	notificationUC notification.UseCase,
	settingsUC settings.UseCase,
	cfg Config,
) *Job {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}

	return &Job{
		l:            l,
		stock:        stockUC,
		alert:        alertUC,
		history:      historyUC,
		notification: notificationUC,
		settings:     settingsUC,
		cfg:          cfg,
		clock:        time.Now,
	}
}
