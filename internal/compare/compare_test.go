package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/internal/models"
)

func pair() []models.CarRecord {
	return []models.CarRecord{
		{
			ID: 1, Brand: "Aurora", Model: "GT", Type: "sports",
			Price: 50000, Horsepower: 520, Torque: 480, TopSpeed: 190,
			Acceleration: 3.5, Weight: 3400, Year: 2023, Seats: 2,
			Engine: "4.0L V8", Transmission: "automatic", Drivetrain: "RWD",
			FuelType: "gasoline", Features: []string{"Launch control", "Carbon roof"},
		},
		{
			ID: 2, Brand: "Verdant", Model: "E1", Type: "electric",
			Price: 30000, Horsepower: 310, TopSpeed: 140,
			Acceleration: 5.9, Weight: 4100, Year: 2024, Seats: 5,
		},
	}
}

func rowByKey(t *testing.T, m *Matrix, key string) Row {
	t.Helper()
	for _, row := range m.Rows {
		if row.Key == key {
			return row
		}
	}
	t.Fatalf("row %q not found", key)
	return Row{}
}

func TestBuild_RequiresTwoToFourCars(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrTooFew)

	_, err = Build(pair()[:1])
	assert.ErrorIs(t, err, ErrTooFew)

	five := make([]models.CarRecord, 5)
	_, err = Build(five)
	assert.ErrorIs(t, err, ErrTooMany)
}

func TestBuild_RowOrderIsFixed(t *testing.T) {
	m, err := Build(pair())
	require.NoError(t, err)

	keys := make([]string, len(m.Rows))
	for i, row := range m.Rows {
		keys[i] = row.Key
	}
	assert.Equal(t, []string{
		"year", "price", "type", "engine", "horsepower", "torque",
		"topSpeed", "acceleration", "weight", "transmission", "drivetrain",
		"fuelType", "seats", "description", "features",
	}, keys)
}

func TestBuild_LowerIsBetterPrice(t *testing.T) {
	// Prices [50000, 30000]: the cheaper car (column 1) wins.
	m, err := Build(pair())
	require.NoError(t, err)

	price := rowByKey(t, m, "price")
	assert.True(t, price.LowerIsBetter)
	assert.Equal(t, 1, price.BestIndex)
	assert.Equal(t, []string{"$50,000", "$30,000"}, price.Values)
}

func TestBuild_HigherIsBetterHorsepower(t *testing.T) {
	m, err := Build(pair())
	require.NoError(t, err)

	hp := rowByKey(t, m, "horsepower")
	assert.False(t, hp.LowerIsBetter)
	assert.Equal(t, 0, hp.BestIndex)
	assert.Equal(t, []string{"520 HP", "310 HP"}, hp.Values)
}

func TestBuild_ZeroValuesExcludedFromBest(t *testing.T) {
	// Second car has no torque; the zero must not win the torque row even
	// though lower values win elsewhere.
	m, err := Build(pair())
	require.NoError(t, err)

	torque := rowByKey(t, m, "torque")
	assert.Equal(t, 0, torque.BestIndex)
	assert.Equal(t, []string{"480 lb-ft", "N/A"}, torque.Values)
}

func TestBuild_NoBestWhenAllValuesAbsent(t *testing.T) {
	cars := []models.CarRecord{
		{ID: 1, Brand: "A", Model: "1"},
		{ID: 2, Brand: "B", Model: "2"},
	}

	m, err := Build(cars)
	require.NoError(t, err)

	for _, key := range []string{"price", "horsepower", "weight", "year"} {
		row := rowByKey(t, m, key)
		assert.Equal(t, -1, row.BestIndex, "row %q", key)
	}
}

func TestBuild_TiesResolveToLeftmostColumn(t *testing.T) {
	cars := []models.CarRecord{
		{ID: 1, Brand: "A", Model: "1", Price: 40000, Horsepower: 400},
		{ID: 2, Brand: "B", Model: "2", Price: 40000, Horsepower: 400},
		{ID: 3, Brand: "C", Model: "3", Price: 40000, Horsepower: 400},
	}

	m, err := Build(cars)
	require.NoError(t, err)
	assert.Equal(t, 0, rowByKey(t, m, "price").BestIndex)
	assert.Equal(t, 0, rowByKey(t, m, "horsepower").BestIndex)
}

func TestBuild_NonNumericRowsHaveNoBest(t *testing.T) {
	m, err := Build(pair())
	require.NoError(t, err)

	typeRow := rowByKey(t, m, "type")
	assert.False(t, typeRow.Numeric)
	assert.Equal(t, -1, typeRow.BestIndex)
	assert.Equal(t, []string{"sports", "electric"}, typeRow.Values)
}

func TestBuild_Formatters(t *testing.T) {
	m, err := Build(pair())
	require.NoError(t, err)

	assert.Equal(t, []string{"3.5s", "5.9s"}, rowByKey(t, m, "acceleration").Values)
	assert.Equal(t, []string{"3,400 lbs", "4,100 lbs"}, rowByKey(t, m, "weight").Values)
	assert.Equal(t, []string{"190 mph", "140 mph"}, rowByKey(t, m, "topSpeed").Values)
	assert.Equal(t, []string{"2 seats", "5 seats"}, rowByKey(t, m, "seats").Values)
	assert.Equal(t, []string{"4.0L V8", "N/A"}, rowByKey(t, m, "engine").Values)
	assert.Equal(t, []string{"Launch control, Carbon roof", "N/A"}, rowByKey(t, m, "features").Values)
	assert.Equal(t, []string{"N/A", "N/A"}, rowByKey(t, m, "description").Values)
}

func TestBuild_AccelerationLowerWins(t *testing.T) {
	m, err := Build(pair())
	require.NoError(t, err)

	accel := rowByKey(t, m, "acceleration")
	assert.True(t, accel.LowerIsBetter)
	assert.Equal(t, 0, accel.BestIndex) // 3.5s beats 5.9s
}
