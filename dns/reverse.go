// Fichier: dns/reverse.go

package dns

import (
	"github.com/miekg/dns"
	"github.com/pkg/errors"

	"project/ip-filter/address"
)

// ReverseName returns the in-addr.arpa. owner name of the PTR record for a,
// e.g. 1.0.0.127.in-addr.arpa. for 127.0.0.1. No lookup is performed.
func ReverseName(a address.Address) (string, error) {
	name, err := dns.ReverseAddr(a.String())
	if err != nil {
		return "", errors.Wrapf(err, "reverse name for %s", a)
	}
	return name, nil
}

// IsReverseName reports whether name is a fully qualified in-addr.arpa. name.
func IsReverseName(name string) bool {
	return dns.IsFqdn(name) && dns.IsSubDomain("in-addr.arpa.", dns.CanonicalName(name))
}
