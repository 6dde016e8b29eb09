package kernel_test

import (
	"testing"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id1.String())
	assert.False(t, id1.IsEqual(id2))
}

func TestUUIDFromString(t *testing.T) {
	t.Run("accepted forms", func(t *testing.T) {
		for _, in := range []string{
			canonical,
			"{" + canonical + "}",
			"urn:uuid:" + canonical,
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(in)
			require.NoError(t, err, in)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("rejected forms", func(t *testing.T) {
		for _, in := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716", canonical + "-x"} {
			_, err := kernel.UUIDFromString(in)
			require.Error(t, err, in)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("nil uuid is not an identifier", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	raw := uuid.MustParse(canonical)

	id, err := kernel.UUIDFromBytes(raw[:])
	require.NoError(t, err)
	assert.Equal(t, canonical, id.String())
	assert.Equal(t, raw, id.Bytes())

	_, err = kernel.UUIDFromBytes([]byte{0x01, 0x02})
	require.Error(t, err)

	_, err = kernel.UUIDFromBytes(make([]byte, 16))
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestParseID(t *testing.T) {
	id, err := kernel.ParseID("package_id", canonical)
	require.NoError(t, err)
	assert.Equal(t, canonical, id.String())

	_, err = kernel.ParseID("package_id", "42")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "package_id")
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.True(t, id.IsEqual(kernel.UUID{}))
}

func TestUUID_BytesReturnsCopy(t *testing.T) {
	id := kernel.NewUUID()
	before := id.String()

	b := id.Bytes()
	for i := range b {
		b[i] = 0xFF
	}

	assert.Equal(t, before, id.String())
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, at, kernel.FixedClock{At: at}.Now())
	assert.Equal(t, time.UTC, kernel.SystemClock{}.Now().Location())
}
