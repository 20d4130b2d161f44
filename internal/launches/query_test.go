package launches

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func dateOf(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildDateFilter(t *testing.T) {
	tests := []struct {
		name   string
		start  *time.Time
		end    *time.Time
		wantOK bool
		want   bson.M
	}{
		{
			name:   "no bounds gives empty filter",
			wantOK: true,
			want:   bson.M{},
		},
		{
			name:   "both bounds gives half-open interval",
			start:  dateOf(2018, time.February, 1),
			end:    dateOf(2018, time.February, 28),
			wantOK: true,
			want: bson.M{
				"date_unix": bson.M{
					"$gte": time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC).Unix(),
					"$lt":  time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC).Unix(),
				},
			},
		},
		{
			name:   "start only gives lower bound",
			start:  dateOf(2020, time.January, 15),
			wantOK: true,
			want: bson.M{
				"date_unix": bson.M{
					"$gte": time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC).Unix(),
				},
			},
		},
		{
			name:   "end only gives exclusive upper bound one day later",
			end:    dateOf(2020, time.January, 15),
			wantOK: true,
			want: bson.M{
				"date_unix": bson.M{
					"$lt": time.Date(2020, time.January, 16, 0, 0, 0, 0, time.UTC).Unix(),
				},
			},
		},
		{
			name:   "single day range covers the whole day",
			start:  dateOf(2022, time.December, 1),
			end:    dateOf(2022, time.December, 1),
			wantOK: true,
			want: bson.M{
				"date_unix": bson.M{
					"$gte": time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC).Unix(),
					"$lt":  time.Date(2022, time.December, 2, 0, 0, 0, 0, time.UTC).Unix(),
				},
			},
		},
		{
			name:   "inverted range short circuits",
			start:  dateOf(2022, time.December, 2),
			end:    dateOf(2022, time.December, 1),
			wantOK: false,
		},
		{
			name:   "month boundary rolls over correctly",
			end:    dateOf(2019, time.December, 31),
			wantOK: true,
			want: bson.M{
				"date_unix": bson.M{
					"$lt": time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC).Unix(),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BuildDateFilter(tt.start, tt.end)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildDateFilterIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2018, time.February, 1, 17, 45, 12, 0, time.UTC)
	end := time.Date(2018, time.February, 28, 3, 0, 0, 0, time.UTC)

	got, ok := BuildDateFilter(&start, &end)
	require.True(t, ok)

	bounds, ok := got["date_unix"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC).Unix(), bounds["$gte"])
	assert.Equal(t, time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC).Unix(), bounds["$lt"])
}

func TestQueryOptions(t *testing.T) {
	list := listOptions()
	assert.Equal(t, []string{"id", "date_unix", "payloads"}, list.Select)
	assert.False(t, list.Pagination)
	assert.Empty(t, list.Populate)

	heaviest := heaviestOptions()
	assert.Equal(t, list.Select, heaviest.Select)
	assert.False(t, heaviest.Pagination)
	require.Len(t, heaviest.Populate, 1)
	assert.Equal(t, "payloads", heaviest.Populate[0].Path)
	assert.Equal(t, []string{"id", "mass_kg"}, heaviest.Populate[0].Select)
}
