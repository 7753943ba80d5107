package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostIsInclusiveOfBothEndpoints(t *testing.T) {
	cost, err := Cost(mustRange(t, "2024-06-01", "2024-06-03"), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(300), cost)
}

func TestCostSingleDay(t *testing.T) {
	cost, err := Cost(mustRange(t, "2024-06-01", "2024-06-01"), 2500)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), cost)
}

func TestCostAcrossMonthBoundary(t *testing.T) {
	cost, err := Cost(mustRange(t, "2024-06-29", "2024-07-02"), 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), cost)
}

func TestCostRejectsNonPositiveRate(t *testing.T) {
	r := mustRange(t, "2024-06-01", "2024-06-03")

	_, err := Cost(r, 0)
	assert.ErrorIs(t, err, ErrInvalidRate)
	_, err = Cost(r, -100)
	assert.ErrorIs(t, err, ErrInvalidRate)
}
