package wallet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechainkit/walletkit/core/wallet"
)

func TestNormalizeAddress(t *testing.T) {
	t.Parallel()

	t.Run("checksums a lowercase address", func(t *testing.T) {
		t.Parallel()

		addr, err := wallet.NormalizeAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
		require.NoError(t, err)
		assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", addr)
	})

	t.Run("idempotent on already normalized input", func(t *testing.T) {
		t.Parallel()

		const want = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
		addr, err := wallet.NormalizeAddress(want)
		require.NoError(t, err)
		assert.Equal(t, want, addr)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"", "0x123", "not-an-address", "0xZZZd6e51aad88F6F4ce6aB8827279cffFb92266"} {
			_, err := wallet.NormalizeAddress(input)
			assert.ErrorIs(t, err, wallet.ErrInvalidAddress, "input %q", input)
		}
	})
}

func TestSameAddress(t *testing.T) {
	t.Parallel()

	assert.True(t, wallet.SameAddress(
		"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
		"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	))
	assert.False(t, wallet.SameAddress(
		"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
	))
	assert.False(t, wallet.SameAddress("garbage", "garbage"))
}

func TestParseNetwork(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]wallet.Network{
		"main": wallet.NetworkMain,
		"TEST": wallet.NetworkTest,
		" solo ": wallet.NetworkSolo,
	} {
		got, err := wallet.ParseNetwork(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := wallet.ParseNetwork("devnet")
	assert.Error(t, err)
}

func TestConnectionValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid connection", func(t *testing.T) {
		t.Parallel()

		conn := wallet.Connection{
			Address:   wallet.MustNormalizeAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"),
			Source:    wallet.SourcePrivy,
			Method:    "email",
			Timestamp: time.Now(),
		}
		require.NoError(t, conn.Validate())
	})

	t.Run("empty address", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, wallet.Connection{}.Validate(), wallet.ErrEmptyAddress)
	})

	t.Run("malformed address", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, wallet.Connection{Address: "0xnope"}.Validate(), wallet.ErrInvalidAddress)
	})
}
