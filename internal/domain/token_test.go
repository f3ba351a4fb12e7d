package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintcast-org/mintcast/internal/domain"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "checksummed address",
			input: "0x052DCF6cB9dDD12C3F1350344CF6cE64E61bCd38",
			want:  "0x052DCF6cB9dDD12C3F1350344CF6cE64E61bCd38",
		},
		{
			name:  "zero address",
			input: "0x0000000000000000000000000000000000000000",
			want:  "0x0000000000000000000000000000000000000000",
		},
		{
			name:    "too short",
			input:   "0xdeadbeef",
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:    "too long",
			input:   "0x052DCF6cB9dDD12C3F1350344CF6cE64E61bCd3800",
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:    "missing 0x prefix",
			input:   "052DCF6cB9dDD12C3F1350344CF6cE64E61bCd38",
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:    "not hex",
			input:   "0xzzzDCF6cB9dDD12C3F1350344CF6cE64E61bCd38",
			wantErr: domain.ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := domain.ParseAddress(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.Hex())
		})
	}
}

func TestParseSalt(t *testing.T) {
	salt, err := domain.ParseSalt("0x000000000000000000000000000000005e95d213a71de2a3918637b124818091")
	require.NoError(t, err)
	assert.Equal(t, byte(0x5e), salt[16])
	assert.Equal(t, byte(0x91), salt[31])

	// A short salt must be rejected, never zero-padded.
	_, err = domain.ParseSalt("0x5e95d213a71de2a3918637b124818091")
	assert.ErrorIs(t, err, domain.ErrInvalidSalt)

	_, err = domain.ParseSalt("0x00000000000000000000000000000000005e95d213a71de2a3918637b124818091")
	assert.ErrorIs(t, err, domain.ErrInvalidSalt)
}
