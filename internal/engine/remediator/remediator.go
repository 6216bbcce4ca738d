// Package remediator marks vulnerability records fixed by local patches.
package remediator

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options controls a remediation run.
type Options struct {
	Status     domain.RemediationStatus
	Comment    string
	BatchSize  int
	BatchDelay time.Duration
}

// Remediator applies a remediation status to the records whose CVE the build patched.
type Remediator struct {
	logger ports.Logger
}

// New creates a Remediator.
func New(logger ports.Logger) *Remediator {
	return &Remediator{logger: logger}
}

type item struct {
	vuln domain.Vulnerability
	cve  string
}

// Run remediates every record in vulns whose CVE appears in patched.
//
// Records already in the target status are skipped without a lookup. BDSA
// records without a related vulnerability are resolved through the session.
// Eligible records are sent in batches of opts.BatchSize; all requests of a
// batch complete before the next one starts, after opts.BatchDelay. Failed
// records are collected in the report. The returned error is non-nil only
// when ctx ends between batches.
func (r *Remediator) Run(
	ctx context.Context,
	session ports.VulnerabilitySession,
	vulns []domain.Vulnerability,
	patched []string,
	opts Options,
) (domain.RemediationReport, error) {
	var report domain.RemediationReport
	if opts.BatchSize <= 0 {
		opts.BatchSize = domain.DefaultBatchSize
	}

	pending := make([]domain.Vulnerability, 0, len(vulns))
	for _, v := range vulns {
		if v.RemediationStatus == opts.Status {
			report.Skipped++
			continue
		}
		pending = append(pending, v)
	}

	items, failures := r.resolveCVEs(ctx, session, pending, opts.BatchSize)
	report.Failures = append(report.Failures, failures...)

	known := lo.SliceToMap(patched, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
	eligible := lo.Filter(items, func(it item, _ int) bool {
		_, ok := known[it.cve]
		return ok
	})
	report.Eligible = len(eligible)

	batches := lo.Chunk(eligible, opts.BatchSize)
	for i, batch := range batches {
		if i > 0 {
			if err := wait(ctx, opts.BatchDelay); err != nil {
				return report, err
			}
		}
		r.logger.Debug(fmt.Sprintf("remediation batch %d/%d: %d records", i+1, len(batches), len(batch)))

		ok, failed := r.runBatch(ctx, session, batch, opts)
		report.Remediated += ok
		report.Failures = append(report.Failures, failed...)
	}

	return report, nil
}

// resolveCVEs attaches a CVE id to each record, dropping records without one.
func (r *Remediator) resolveCVEs(
	ctx context.Context,
	session ports.VulnerabilitySession,
	vulns []domain.Vulnerability,
	limit int,
) ([]item, []domain.RemediationFailure) {
	items := make([]item, len(vulns))
	errs := make([]error, len(vulns))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, v := range vulns {
		items[i].vuln = v
		if cve := v.CVE(); cve != "" || v.Source != domain.SourceBDSA {
			items[i].cve = cve
			continue
		}
		g.Go(func() error {
			cve, err := session.LinkedCVE(ctx, v)
			if err != nil {
				errs[i] = err
				return nil
			}
			items[i].cve = cve
			return nil
		})
	}
	_ = g.Wait()

	var failures []domain.RemediationFailure
	out := items[:0]
	for i, it := range items {
		if errs[i] != nil {
			r.logger.Warn(fmt.Sprintf("could not resolve CVE of %s: %v", it.vuln.Name, errs[i]))
			failures = append(failures, domain.RemediationFailure{Vulnerability: it.vuln, Err: errs[i]})
			continue
		}
		if it.cve == "" {
			continue
		}
		out = append(out, it)
	}
	return out, failures
}

func (r *Remediator) runBatch(
	ctx context.Context,
	session ports.VulnerabilitySession,
	batch []item,
	opts Options,
) (int, []domain.RemediationFailure) {
	errs := make([]error, len(batch))

	var g errgroup.Group
	for i, it := range batch {
		g.Go(func() error {
			errs[i] = session.Remediate(ctx, it.vuln, opts.Status, opts.Comment)
			return nil
		})
	}
	_ = g.Wait()

	ok := 0
	var failures []domain.RemediationFailure
	for i, err := range errs {
		it := batch[i]
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrRemediationFailed.Error()), "cve", it.cve)
			r.logger.Warn(fmt.Sprintf("failed to remediate %s (%s) on %s %s: %v",
				it.vuln.Name, it.cve, it.vuln.ComponentName, it.vuln.ComponentVersion, err))
			failures = append(failures, domain.RemediationFailure{Vulnerability: it.vuln, Err: err})
			continue
		}
		r.logger.Debug(fmt.Sprintf("remediated %s (%s) as %s", it.vuln.Name, it.cve, opts.Status))
		ok++
	}
	return ok, failures
}

func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
