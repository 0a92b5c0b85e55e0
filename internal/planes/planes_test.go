package planes

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitplane/errs"
)

func TestDisaggregate_KnownBatch(t *testing.T) {
	// 23.5 and 45.0 as binary16.
	batch := []uint16{0x4DE0, 0x51A0}
	planes := Disaggregate(batch)

	for p, plane := range planes {
		require.Len(t, plane, 2, "plane %d", p)
		require.Equal(t, byte(batch[0]>>p&1), plane[0], "plane %d sample 0", p)
		require.Equal(t, byte(batch[1]>>p&1), plane[1], "plane %d sample 1", p)
	}

	require.Equal(t, BitSequence{0, 0}, planes[SignPlane])
	require.Equal(t, BitSequence{1, 1}, planes[ExponentPlaneHigh])
	require.Equal(t, BitSequence{0, 1}, planes[12])
}

func TestRoundTrip_AllPatternsAsSingletonBatches(t *testing.T) {
	for v := range 1 << 16 {
		batch := []uint16{uint16(v)}
		planes := Disaggregate(batch)

		got, err := Reaggregate(planes[:])
		require.NoError(t, err)
		require.Equal(t, batch, got)
	}
}

func TestRoundTrip_RandomBatches(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11)) //nolint: gosec

	for range 20 {
		batch := make([]uint16, 1000)
		for i := range batch {
			batch[i] = uint16(rng.UintN(1 << 16))
		}

		planes := Disaggregate(batch)
		got, err := Reaggregate(planes[:])
		require.NoError(t, err)
		require.Equal(t, batch, got)
	}
}

func TestRoundTrip_EmptyBatch(t *testing.T) {
	planes := Disaggregate(nil)
	for _, plane := range planes {
		require.Empty(t, plane)
	}

	got, err := Reaggregate(planes[:])
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReaggregate_LengthMismatch(t *testing.T) {
	planes := Disaggregate([]uint16{1, 2, 3})

	t.Run("too_few_planes", func(t *testing.T) {
		_, err := Reaggregate(planes[:15])
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
	})

	t.Run("too_many_planes", func(t *testing.T) {
		extra := append(planes[:], BitSequence{0, 0, 0})
		_, err := Reaggregate(extra)
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
	})

	t.Run("unequal_lengths", func(t *testing.T) {
		broken := planes
		broken[9] = BitSequence{1, 0}
		_, err := Reaggregate(broken[:])
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
		require.Contains(t, err.Error(), "plane 9")
	})
}

func TestMerge_ShorterPlane(t *testing.T) {
	dst := []uint16{0, 0, 0}

	require.NotPanics(t, func() { merge(dst, BitSequence{1}, 4) })
	require.Equal(t, []uint16{1 << 4, 0, 0}, dst)

	merge(dst, BitSequence{1, 1, 1, 1}, 0)
	require.Equal(t, []uint16{1<<4 | 1, 1, 1}, dst)
}

func TestReaggregate_UsesLowestBitOnly(t *testing.T) {
	var planes [NumPlanes]BitSequence
	for p := range planes {
		planes[p] = BitSequence{0}
	}
	planes[3] = BitSequence{0xFF}

	got, err := Reaggregate(planes[:])
	require.NoError(t, err)
	require.Equal(t, []uint16{1 << 3}, got)
}

func TestBitSequence_Ones(t *testing.T) {
	require.Equal(t, 0, BitSequence{}.Ones())
	require.Equal(t, 2, BitSequence{1, 0, 1}.Ones())
	require.Equal(t, 3, BitSequence{1, 0, 1}.Len())
}

func BenchmarkDisaggregate(b *testing.B) {
	batch := make([]uint16, 4096)
	for i := range batch {
		batch[i] = uint16(0x4D00 + i%256)
	}

	for b.Loop() {
		_ = Disaggregate(batch)
	}
}
