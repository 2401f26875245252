// Fichier: formatter/output.go

package formatter

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"project/ip-filter/address"
	"project/ip-filter/config"
	"project/ip-filter/dns"
)

// Style selects how an address line is rendered.
type Style int

const (
	// Dotted renders 1.2.3.4.
	Dotted Style = iota
	// PTR renders the reverse lookup name, 4.3.2.1.in-addr.arpa.
	PTR
)

// ParseStyle maps a configuration format name to a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "", config.FormatDotted:
		return Dotted, nil
	case config.FormatPTR:
		return PTR, nil
	}
	return Dotted, errors.Errorf("unknown output format %q", name)
}

// Render converts one address to its text form.
func Render(a address.Address, s Style) (string, error) {
	if s != PTR {
		return a.String(), nil
	}
	name, err := dns.ReverseName(a)
	if err != nil {
		return "", err
	}
	if !dns.IsReverseName(name) {
		return "", errors.Errorf("reverse name %q for %s is not under in-addr.arpa.", name, a)
	}
	return name, nil
}

// Lines renders every address of the pool in pool order.
func Lines(p address.Pool, s Style) ([]string, error) {
	lines := make([]string, 0, len(p))
	for _, a := range p {
		line, err := Render(a, s)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Write prints the pool to w, one address per line.
func Write(w io.Writer, p address.Pool, s Style) error {
	lines, err := Lines(p, s)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
