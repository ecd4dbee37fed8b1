package memcache_fx

import (
	"go.uber.org/fx"

	mem "messhall/pkg/memcache"
)

var Module = fx.Provide(provideScanResults)

func provideScanResults() mem.ScanResultStore {
	return mem.NewScanResults()
}
