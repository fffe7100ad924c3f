package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nourish-generator/internal/pkg/common"
)

func TestRecord(t *testing.T) {
	svc := NewService()

	require.NoError(t, svc.Record(TypeLike, "Spicy Chicken Rice"))
	require.NoError(t, svc.Record(TypeLike, "Pad Thai"))
	require.NoError(t, svc.Record(TypeDislike, "Mystery Bowl"))

	likes, dislikes := svc.Totals()
	assert.Equal(t, int64(2), likes)
	assert.Equal(t, int64(1), dislikes)
}

func TestRecordInvalidType(t *testing.T) {
	svc := NewService()

	err := svc.Record("meh", "Some Dish")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
	assert.Equal(t, `Invalid feedback type. Must be "like" or "dislike"`, err.Error())

	likes, dislikes := svc.Totals()
	assert.Zero(t, likes)
	assert.Zero(t, dislikes)
}
