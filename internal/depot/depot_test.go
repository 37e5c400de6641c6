package depot

import (
	"math/rand"
	"testing"

	"stratosfear/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFleet(t *testing.T) []*models.Spacecraft {
	t.Helper()
	specs := []struct {
		name     string
		seats    int
		capacity int
	}{
		{"The Panic Capsule", 2, 1000},
		{"Event Horizon", 5, 2500},
		{"Serenity", 8, 4000},
		{"Millennium Falcon", 10, 5000},
		{"Nostromo", 25, 10000},
	}
	fleet := make([]*models.Spacecraft, 0, len(specs))
	for _, s := range specs {
		sc, err := models.NewSpacecraft(s.name, s.seats, s.capacity)
		require.NoError(t, err)
		fleet = append(fleet, sc)
	}
	return fleet
}

func TestNew(t *testing.T) {
	d, err := New(DefaultPool)
	require.NoError(t, err)
	assert.Equal(t, 25000, d.Initial())
	assert.Equal(t, 25000, d.Remaining())
	assert.False(t, d.Empty())

	_, err = New(-1)
	assert.ErrorIs(t, err, ErrInvalidPool)
}

func TestAllocate(t *testing.T) {
	d, err := New(DefaultPool)
	require.NoError(t, err)
	sc := testFleet(t)[2]

	tr, err := d.Allocate(sc, 3000)
	require.NoError(t, err)

	assert.Equal(t, 3000, sc.CurrentFuel)
	assert.Equal(t, 22000, d.Remaining())
	assert.Equal(t, Transfer{
		Spacecraft:     "Serenity",
		Amount:         3000,
		ShipFuel:       3000,
		ShipCapacity:   4000,
		DepotRemaining: 22000,
	}, tr)
}

func TestAllocate_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		pool   int
		onShip int
		amount int
	}{
		{name: "negative amount", pool: 5000, amount: -1},
		{name: "exceeds tank capacity", pool: 5000, amount: 4001},
		{name: "exceeds remaining tank space", pool: 5000, onShip: 3500, amount: 501},
		{name: "exceeds depot stock", pool: 100, amount: 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.pool)
			require.NoError(t, err)
			sc, err := models.NewSpacecraft("Serenity", 8, 4000)
			require.NoError(t, err)
			if tt.onShip > 0 {
				_, err := d.Allocate(sc, tt.onShip)
				require.NoError(t, err)
			}
			before, depotBefore := sc.CurrentFuel, d.Remaining()

			_, err = d.Allocate(sc, tt.amount)

			assert.ErrorIs(t, err, ErrOverAllocation)
			assert.Equal(t, before, sc.CurrentFuel)
			assert.Equal(t, depotBefore, d.Remaining())
		})
	}
}

func TestAllocate_ZeroIsNoop(t *testing.T) {
	d, err := New(DefaultPool)
	require.NoError(t, err)
	sc := testFleet(t)[0]

	for i := 0; i < 3; i++ {
		_, err := d.Allocate(sc, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, sc.CurrentFuel)
	assert.Equal(t, DefaultPool, d.Remaining())
}

func TestMaxAllocation(t *testing.T) {
	d, err := New(1500)
	require.NoError(t, err)
	fleet := testFleet(t)

	assert.Equal(t, 1000, d.MaxAllocation(fleet[0]))
	assert.Equal(t, 1500, d.MaxAllocation(fleet[1]))

	_, err = d.Allocate(fleet[1], 1500)
	require.NoError(t, err)
	assert.True(t, d.Empty())
	assert.Equal(t, 0, d.MaxAllocation(fleet[0]))
}

func TestReclaim(t *testing.T) {
	d, err := New(DefaultPool)
	require.NoError(t, err)
	sc := testFleet(t)[3]

	_, err = d.Allocate(sc, 5000)
	require.NoError(t, err)

	tr, err := d.Reclaim(sc, 1200)
	require.NoError(t, err)
	assert.Equal(t, 3800, sc.CurrentFuel)
	assert.Equal(t, 21200, d.Remaining())
	assert.Equal(t, 1200, tr.Amount)
	assert.Equal(t, 21200, tr.DepotRemaining)

	_, err = d.Reclaim(sc, 3801)
	assert.ErrorIs(t, err, ErrInsufficientFuel)
	_, err = d.Reclaim(sc, -5)
	assert.ErrorIs(t, err, ErrInsufficientFuel)
	assert.Equal(t, 3800, sc.CurrentFuel)
}

func TestAllocateReclaim_Inverse(t *testing.T) {
	d, err := New(DefaultPool)
	require.NoError(t, err)
	sc := testFleet(t)[4]

	_, err = d.Allocate(sc, 7777)
	require.NoError(t, err)
	_, err = d.Reclaim(sc, 7777)
	require.NoError(t, err)

	assert.Equal(t, 0, sc.CurrentFuel)
	assert.Equal(t, DefaultPool, d.Remaining())
}

func TestConservation_RandomSequence(t *testing.T) {
	d, err := New(DefaultPool)
	require.NoError(t, err)
	fleet := testFleet(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		sc := fleet[rng.Intn(len(fleet))]
		amount := rng.Intn(6000) - 500

		if rng.Intn(2) == 0 {
			_, _ = d.Allocate(sc, amount)
		} else {
			_, _ = d.Reclaim(sc, amount)
		}

		audit := d.Audit(fleet)
		require.True(t, audit.Balanced(), "step %d: %+v", i, audit)
		for _, ship := range fleet {
			require.GreaterOrEqual(t, ship.CurrentFuel, 0)
			require.LessOrEqual(t, ship.CurrentFuel, ship.FuelCapacity)
		}
		require.GreaterOrEqual(t, d.Remaining(), 0)
	}
}

func TestAudit(t *testing.T) {
	d, err := New(DefaultPool)
	require.NoError(t, err)
	fleet := testFleet(t)

	for _, sc := range fleet {
		_, err := d.Allocate(sc, sc.FuelCapacity)
		require.NoError(t, err)
	}

	audit := d.Audit(fleet)
	assert.Equal(t, Audit{Initial: 25000, OnShips: 22500, InDepot: 2500, Accounted: 25000}, audit)
	assert.True(t, audit.Balanced())

	// fuel changed outside the depot breaks the balance
	fleet[0].CurrentFuel--
	assert.False(t, d.Audit(fleet).Balanced())
}
