package hook

import (
	"context"

	"github.com/jxo-me/cfddns/consts"
)

// Event is what a hook gets to know about a finished run.
type Event struct {
	Domain     string
	Ipv4Addr   string
	Ipv4Result consts.UpdateStatusType
	Ipv6Addr   string
	Ipv6Result consts.UpdateStatusType
}

// Changed reports whether either family was updated or failed to update.
func (e Event) Changed() bool {
	for _, st := range []consts.UpdateStatusType{e.Ipv4Result, e.Ipv6Result} {
		if st == consts.UpdatedSuccess || st == consts.UpdatedFailed {
			return true
		}
	}
	return false
}

type IHook interface {
	String() string
	ExecHook(ctx context.Context, event Event) error
}
