package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project/ip-filter/address"
)

func TestReverseName(t *testing.T) {
	tests := []struct {
		in   address.Address
		want string
	}{
		{address.Address{127, 0, 0, 1}, "1.0.0.127.in-addr.arpa."},
		{address.Address{46, 70, 225, 39}, "39.225.70.46.in-addr.arpa."},
		{address.Address{0, 0, 0, 0}, "0.0.0.0.in-addr.arpa."},
	}

	for _, tt := range tests {
		got, err := ReverseName(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.True(t, IsReverseName(got))
	}
}

func TestIsReverseName(t *testing.T) {
	assert.True(t, IsReverseName("1.0.0.127.IN-ADDR.ARPA."))
	assert.False(t, IsReverseName("1.0.0.127.in-addr.arpa"))
	assert.False(t, IsReverseName("example.com."))
}
