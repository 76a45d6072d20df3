// Package gateway implements the provider protocols for VNPay, MoMo,
// ZaloPay and manual bank transfers behind ports.GatewayAdapter.
package gateway

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"deposit-gateway/config"
	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// vietnamTime is the GMT+7 zone every Vietnamese gateway stamps dates in.
var vietnamTime = time.FixedZone("GMT+7", 7*60*60)

// Registry is the closed set of enabled adapters keyed by method.
type Registry struct {
	adapters map[domain.PaymentMethod]ports.GatewayAdapter
}

// NewRegistry indexes adapters by their method. A later adapter for the
// same method replaces an earlier one.
func NewRegistry(adapters ...ports.GatewayAdapter) *Registry {
	r := &Registry{adapters: make(map[domain.PaymentMethod]ports.GatewayAdapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Method()] = a
	}
	return r
}

// Adapter returns the adapter for method, or DEP_003 when it is not enabled.
func (r *Registry) Adapter(method domain.PaymentMethod) (ports.GatewayAdapter, error) {
	a, ok := r.adapters[method]
	if !ok {
		return nil, apperror.ErrMethodUnavailable(string(method))
	}
	return a, nil
}

// Methods lists enabled methods in display order.
func (r *Registry) Methods() []domain.PaymentMethod {
	order := make(map[domain.PaymentMethod]int, len(domain.PaymentMethods))
	for i, m := range domain.PaymentMethods {
		order[m] = i
	}
	out := make([]domain.PaymentMethod, 0, len(r.adapters))
	for m := range r.adapters {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i]] < order[out[j]] })
	return out
}

// Build constructs the adapters enabled in cfg. A provider that is enabled
// but misses a secret fails with CFG_001 instead of running unsigned.
func Build(cfg config.GatewaysConfig, feeRepo ports.FeeConfigRepository, client *http.Client, log zerolog.Logger) (*Registry, error) {
	var adapters []ports.GatewayAdapter

	if cfg.VNPay.Enabled {
		a, err := NewVNPay(cfg.VNPay)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	if cfg.MoMo.Enabled {
		a, err := NewMoMo(cfg.MoMo, client, log)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	if cfg.ZaloPay.Enabled {
		a, err := NewZaloPay(cfg.ZaloPay)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	if cfg.BankTransfer.Enabled {
		adapters = append(adapters, NewBankTransfer(cfg.BankTransfer, feeRepo))
	}

	return NewRegistry(adapters...), nil
}

func requireSecrets(provider string, fields map[string]string) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if fields[k] == "" {
			return apperror.ErrConfiguration(provider + ": " + k + " is required")
		}
	}
	return nil
}

func parseAmount(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
