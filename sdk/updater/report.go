package updater

import (
	"fmt"
	"net/netip"

	"github.com/jxo-me/cfddns/consts"
	"github.com/jxo-me/cfddns/core/ddns"
)

// Result is the outcome for one address family.
type Result struct {
	Family ddns.Family
	Domain string
	Status consts.UpdateStatusType
	// Address is the resolved public address, when known.
	Address netip.Addr
	// Previous is the record content before the run, when known.
	Previous netip.Addr
	Err      error
}

func (r Result) String() string {
	switch r.Status {
	case consts.UpdatedNothing:
		return fmt.Sprintf("%s Record already matches desired %s; skipping...", r.Family, r.Family.Network())
	case consts.UpdatedLocked:
		return fmt.Sprintf("%s Record is locked; skipping...", r.Family)
	case consts.UpdatedSuccess:
		return fmt.Sprintf("%s Record updated to: %s", r.Family, r.Address)
	case consts.UpdatedFailed:
		return fmt.Sprintf("%s Record update failed: %v", r.Family, r.Err)
	default:
		return fmt.Sprintf("%s Record: %s", r.Family, r.Status)
	}
}

// Report collects the per-family results of one run, in family order.
type Report struct {
	Zone    ddns.Zone
	Domain  string
	Results []Result
}

// Get returns the result for family.
func (r Report) Get(family ddns.Family) (Result, bool) {
	for _, res := range r.Results {
		if res.Family == family {
			return res, true
		}
	}
	return Result{}, false
}

// Changed reports whether any family was updated or failed.
func (r Report) Changed() bool {
	for _, res := range r.Results {
		if res.Status == consts.UpdatedSuccess || res.Status == consts.UpdatedFailed {
			return true
		}
	}
	return false
}

// Lines renders every result on its own line.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		lines = append(lines, res.String())
	}
	return lines
}
