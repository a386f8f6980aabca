package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		name  string
		known bool
		key   KeyName
	}{
		"IPv4 source": {
			name:  "ipsource",
			known: true,
			key:   IPSource,
		},
		"IPv4 destination": {
			name:  "ipdestination",
			known: true,
			key:   IPDestination,
		},
		"IPv6 source": {
			name:  "ip6source",
			known: true,
			key:   IP6Source,
		},
		"TCP source port": {
			name:  "tcpsourceport",
			known: true,
			key:   TCPSourcePort,
		},
		"Unknown key": {
			name:  "unknownkey",
			known: false,
		},
		"Near miss": {
			name:  "ip5source",
			known: false,
		},
		"Case sensitive": {
			name:  "IPSource",
			known: false,
		},
	}

	for name, tc := range tests {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			key, ok := Lookup(tc.name)
			assert.Equal(t, tc.known, ok)
			if tc.known {
				assert.Equal(t, tc.key, key)
			}
		})
	}
}

// The two tables must be fully complementary: every spelling maps to a key
// that maps back to the same spelling, and both have the same size.
func TestTablesComplementary(t *testing.T) {
	require.Equal(t, len(nameToKey), len(keyToName))
	for name, key := range nameToKey {
		inv, ok := keyToName[key]
		require.Truef(t, ok, "key %v from nameToKey[%q] missing from keyToName", key, name)
		assert.Equal(t, name, inv)
		assert.Equal(t, name, key.String())
	}
	for key, name := range keyToName {
		inv, ok := nameToKey[name]
		require.Truef(t, ok, "name %q from keyToName[%v] missing from nameToKey", name, key)
		assert.Equal(t, key, inv)
	}
}

func TestKeyName_String_Unknown(t *testing.T) {
	assert.Equal(t, "keyname(0)", KeyName(0).String())
	assert.Equal(t, "keyname(9999)", KeyName(9999).String())
}

func TestKeyName_MarshalText(t *testing.T) {
	data, err := IP6Destination.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "ip6destination", string(data))
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, Count())
	assert.True(t, sort.StringsAreSorted(names))
	for _, name := range names {
		_, ok := Lookup(name)
		assert.Truef(t, ok, "listed name %q should be recognized", name)
	}
}
