// Package catalog defines the set of flow key names recognized by the DSL.
//
// The catalog is intentionally partial. Flow analytics platforms document far
// more keys than are listed here, and new ones are added as data: one constant
// and one table entry, no grammar changes.
package catalog

import (
	"fmt"
	"sort"
)

// KeyName identifies a single catalog-recognized flow key, such as a source
// or destination address field.
type KeyName int

const (
	IPSource KeyName = iota + 1
	IPDestination

	// IPv6 header fields.
	IP6Offset
	IP6TOS
	IP6ECN
	IP6DSCP
	IP6DSCPName
	IP6FlowLabel
	IP6TTL
	IP6Source
	IP6Destination
	IP6Bytes
	IP6Extensions
	IP6FragOffset
	IP6FragM
	IP6NextHeader

	// Transport fields.
	TCPSourcePort
	TCPDestinationPort
	UDPSourcePort
	UDPDestinationPort
)

// nameToKey maps the DSL spelling of a key to its KeyName value.
// Lookups are case-sensitive. Read-only after package init.
var nameToKey = map[string]KeyName{
	"ipsource":      IPSource,
	"ipdestination": IPDestination,

	"ip6_offset":     IP6Offset,
	"ip6tos":         IP6TOS,
	"ip6ecn":         IP6ECN,
	"ip6dscp":        IP6DSCP,
	"ip6dscpname":    IP6DSCPName,
	"ip6flowlabel":   IP6FlowLabel,
	"ip6ttl":         IP6TTL,
	"ip6source":      IP6Source,
	"ip6destination": IP6Destination,
	"ip6bytes":       IP6Bytes,
	"ip6extensions":  IP6Extensions,
	"ip6fragoffset":  IP6FragOffset,
	"ip6fragm":       IP6FragM,
	"ip6nexthdr":     IP6NextHeader,

	"tcpsourceport":      TCPSourcePort,
	"tcpdestinationport": TCPDestinationPort,
	"udpsourceport":      UDPSourcePort,
	"udpdestinationport": UDPDestinationPort,
}

// keyToName is the inverse of nameToKey, populated at init.
var keyToName = make(map[KeyName]string, len(nameToKey))

func init() {
	for name, key := range nameToKey {
		keyToName[key] = name
	}
}

// Lookup reports whether name is a recognized key name, and returns its
// KeyName value if so.
func Lookup(name string) (KeyName, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// String returns the DSL spelling of the key name.
func (k KeyName) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return fmt.Sprintf("keyname(%d)", int(k))
}

// MarshalText renders the key by its DSL spelling, which keeps structural
// output readable when a parsed definition is serialized.
func (k KeyName) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Names returns all recognized key name spellings in sorted order.
func Names() []string {
	names := make([]string, 0, len(nameToKey))
	for name := range nameToKey {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of catalog entries.
func Count() int {
	return len(nameToKey)
}
