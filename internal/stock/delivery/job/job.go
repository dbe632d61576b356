package job

import (
	"context"
	"time"

	"alert-srv/internal/model"
	"alert-srv/internal/notification"

	"golang.org/x/sync/errgroup"
)

// systemScope is the scope background work runs under.
func systemScope(orgID string) model.Scope {
	return model.Scope{OrganizationID: orgID, Role: model.RoleAdmin}
}

// Run ticks until ctx is done. The first tick runs immediately.
func (j *Job) Run(ctx context.Context) error {
	j.l.Infof(ctx, "internal.stock.delivery.job.Run: starting, interval=%s concurrency=%d", j.cfg.Interval, j.cfg.Concurrency)

	ticker := time.NewTicker(j.cfg.Interval)
	defer ticker.Stop()

	for {
		j.Tick(ctx)

		select {
		case <-ctx.Done():
			j.l.Infof(ctx, "internal.stock.delivery.job.Run: stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Tick runs one round over every organization.
func (j *Job) Tick(ctx context.Context) {
	orgs, err := j.alert.Organizations(ctx)
	if err != nil {
		j.l.Errorf(ctx, "internal.stock.delivery.job.Tick.Organizations: %v", err)
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.cfg.Concurrency)
	for _, org := range orgs {
		org := org
		g.Go(func() error {
			j.runOrganization(gctx, systemScope(org))
			return nil
		})
	}
	_ = g.Wait()

	j.maybeSendDigests(ctx)
}

func (j *Job) runOrganization(ctx context.Context, sc model.Scope) {
	res, err := j.stock.RunPass(ctx, sc)
	if err != nil {
		j.l.Errorf(ctx, "internal.stock.delivery.job.runOrganization.RunPass: org=%s: %v", sc.OrganizationID, err)
	} else if res.AlertsCreated > 0 || res.OrdersCreated > 0 || res.Skipped > 0 {
		j.l.Infof(ctx, "internal.stock.delivery.job.runOrganization.RunPass: org=%s checked=%d alerts=%d orders=%d skipped=%d",
			sc.OrganizationID, res.Checked, res.AlertsCreated, res.OrdersCreated, res.Skipped)
	}

	alerts, err := j.alert.Maintenance(ctx, sc)
	if err != nil {
		j.l.Errorf(ctx, "internal.stock.delivery.job.runOrganization.Maintenance: org=%s: %v", sc.OrganizationID, err)
		return
	}
	if len(alerts) == 0 {
		return
	}

	out, err := j.history.RecordMaintenance(ctx, sc, alerts)
	if err != nil {
		j.l.Errorf(ctx, "internal.stock.delivery.job.runOrganization.RecordMaintenance: org=%s: %v", sc.OrganizationID, err)
		return
	}
	if len(out.Created) > 0 {
		j.l.Infof(ctx, "internal.stock.delivery.job.runOrganization.RecordMaintenance: org=%s created=%d", sc.OrganizationID, len(out.Created))
	}
}

// maybeSendDigests runs the digest check once per day, from DigestHour on.
func (j *Job) maybeSendDigests(ctx context.Context) {
	now := j.clock()
	today := now.Format("2006-01-02")

	j.mu.Lock()
	due := now.Hour() >= j.cfg.DigestHour && j.lastDigest != today
	if due {
		j.lastDigest = today
	}
	j.mu.Unlock()
	if !due {
		return
	}

	list, err := j.settings.ListDigestEnabled(ctx)
	if err != nil {
		j.l.Errorf(ctx, "internal.stock.delivery.job.maybeSendDigests.ListDigestEnabled: %v", err)
		j.mu.Lock()
		j.lastDigest = ""
		j.mu.Unlock()
		return
	}

	for _, st := range list {
		if err := ctx.Err(); err != nil {
			return
		}
		if st.DigestWeekday() != now.Weekday() {
			continue
		}
		out, err := j.notification.SendWeeklyDigest(ctx, systemScope(st.OrganizationID), notification.DigestInput{})
		if err != nil {
			j.l.Errorf(ctx, "internal.stock.delivery.job.maybeSendDigests.SendWeeklyDigest: org=%s: %v", st.OrganizationID, err)
			continue
		}
		if out.Sent {
			j.l.Infof(ctx, "internal.stock.delivery.job.maybeSendDigests: org=%s alerts=%d", st.OrganizationID, out.AlertCount)
		}
	}
}
