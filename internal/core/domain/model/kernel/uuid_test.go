package kernel_test

import (
	"testing"

	"toyrental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toyFixtureID = "7b1c2f30-9a4d-4e21-8c55-3d90aa17f002"

func TestNewUUID(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	assert.NoError(t, first.Validate())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, first.String())
	assert.False(t, first.IsEqual(second), "Generated ids must not collide")
}

func TestUUIDFromString(t *testing.T) {
	t.Run("accepts the canonical and alternate encodings", func(t *testing.T) {
		for name, input := range map[string]string{
			"canonical":  toyFixtureID,
			"braced":     "{" + toyFixtureID + "}",
			"urn prefix": "urn:uuid:" + toyFixtureID,
			"no hyphens": "7b1c2f309a4d4e218c553d90aa17f002",
		} {
			t.Run(name, func(t *testing.T) {
				id, err := kernel.UUIDFromString(input)
				require.NoError(t, err)
				assert.Equal(t, toyFixtureID, id.String())
			})
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"teddy-bear",
			"7b1c2f30-9a4d-4e21-8c55",
			toyFixtureID + "-trailing",
			"zz1c2f30-9a4d-4e21-8c55-3d90aa17f002",
		} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input %q", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("rejects the zero uuid", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through the raw representation", func(t *testing.T) {
		source, err := kernel.UUIDFromString(toyFixtureID)
		require.NoError(t, err)

		raw := source.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(source))
	})

	t.Run("rejects a truncated slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7b, 0x1c, 0x2f})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("rejects all-zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Bytes(t *testing.T) {
	id := kernel.NewUUID()
	raw := id.Bytes()

	assert.IsType(t, uuid.UUID{}, raw)
	assert.Equal(t, id.String(), raw.String())

	// Bytes returns a copy; scribbling on it must not reach the value object.
	for i := range raw {
		raw[i] = 0xFF
	}
	assert.NoError(t, id.Validate())
	assert.NotEqual(t, raw.String(), id.String())
}

func TestUUID_IsEqual(t *testing.T) {
	left, err := kernel.UUIDFromString(toyFixtureID)
	require.NoError(t, err)
	right, err := kernel.UUIDFromString(toyFixtureID)
	require.NoError(t, err)

	assert.True(t, left.IsEqual(right))
	assert.True(t, right.IsEqual(left))
	assert.False(t, left.IsEqual(kernel.NewUUID()))

	var zeroA, zeroB kernel.UUID
	assert.True(t, zeroA.IsEqual(zeroB))
	assert.False(t, zeroA.IsEqual(left))
}

func TestUUID_Validate(t *testing.T) {
	assert.NoError(t, kernel.NewUUID().Validate())

	var zero kernel.UUID
	assert.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_DetectsUninitializedAggregateID(t *testing.T) {
	type orderHeader struct {
		ID kernel.UUID
	}

	initialized := orderHeader{ID: kernel.NewUUID()}
	assert.NoError(t, initialized.ID.Validate())

	var blank orderHeader
	assert.Error(t, blank.ID.Validate())
}
