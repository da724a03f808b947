package updater

import (
	"context"
	"net/netip"

	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/ddns"
	"github.com/jxo-me/cfddns/core/logger"
	xlogger "github.com/jxo-me/cfddns/sdk/logger"
	"github.com/pkg/errors"
)

// Target names the records to reconcile.
type Target struct {
	Zone     string
	Domain   string
	Families []ddns.Family
}

// Updater reconciles address records against the host's public addresses.
type Updater struct {
	provider ddns.IProvider
	resolver ddns.IResolver
	logger   logger.ILogger
}

func New(provider ddns.IProvider, resolver ddns.IResolver, log logger.ILogger) *Updater {
	log = xlogger.OrDefault(log)
	return &Updater{provider: provider, resolver: resolver, logger: log}
}

// plan is the decision taken for one family before anything is written.
type plan struct {
	record ddns.AddressRecord
	result Result
}

// Run evaluates every family in scope and only then applies the updates
// that are needed. The first failure during evaluation aborts the run
// without any write; a failed update aborts the remaining ones.
func (u *Updater) Run(ctx context.Context, target Target) (Report, error) {
	report := Report{Domain: target.Domain}
	if len(target.Families) == 0 {
		return report, &ddns.ConfigurationError{Reason: "no address family in scope"}
	}

	zone, err := u.provider.FetchZone(ctx, target.Zone)
	if err != nil {
		return report, errors.WithMessagef(err, "failed to fetch zone %s", target.Zone)
	}
	report.Zone = zone
	log := u.logger.WithFields(map[string]any{"zone": target.Zone, "domain": target.Domain})
	log.Debugf("zone %s has id %s", target.Zone, zone.ID)

	plans := make([]plan, 0, len(target.Families))
	for _, family := range target.Families {
		p, err := u.evaluate(ctx, zone, target.Domain, family)
		if err != nil {
			report.Results = append(report.Results, Result{
				Family: family,
				Domain: target.Domain,
				Status: consts.UpdatedFailed,
				Err:    err,
			})
			return report, err
		}
		log.Debugf("%s record %s: current %s, desired %s, status %s",
			family, p.record.ID, p.record.Content, p.result.Address, p.result.Status)
		plans = append(plans, p)
	}

	for _, p := range plans {
		res := p.result
		if res.Status == "" {
			if err := u.provider.UpdateAddressRecord(ctx, zone.ID, p.record.ID, res.Address); err != nil {
				res.Status = consts.UpdatedFailed
				res.Err = errors.WithMessagef(err, "failed to update %s record %s", res.Family, p.record.ID)
				report.Results = append(report.Results, res)
				return report, res.Err
			}
			res.Status = consts.UpdatedSuccess
			log.Infof("%s record updated from %s to %s", res.Family, res.Previous, res.Address)
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// evaluate fetches the record and the public address of family and decides
// what to do. An empty status means an update is needed.
func (u *Updater) evaluate(ctx context.Context, zone ddns.Zone, domain string, family ddns.Family) (plan, error) {
	record, err := u.provider.FetchAddressRecord(ctx, zone.ID, domain, family)
	if err != nil {
		return plan{}, errors.WithMessagef(err, "failed to fetch %s record for %s", family, domain)
	}

	addr, err := ddns.Resolve(ctx, u.resolver, family)
	if err != nil {
		return plan{}, errors.WithMessagef(err, "failed to resolve public %s address", family.Network())
	}

	p := plan{
		record: record,
		result: Result{
			Family:   family,
			Domain:   domain,
			Address:  addr,
			Previous: record.Content,
		},
	}
	switch {
	case sameAddr(record.Content, addr):
		p.result.Status = consts.UpdatedNothing
	case record.Locked:
		p.result.Status = consts.UpdatedLocked
	}
	return p, nil
}

func sameAddr(a, b netip.Addr) bool {
	return a.Unmap() == b.Unmap()
}
