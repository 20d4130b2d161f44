package launches

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"starbase/internal/constants"
)

// QueryRequest is the body posted to the upstream query endpoint. The query
// half speaks MongoDB filter syntax, so it is built as bson.M; the maps
// serialize to the same JSON the wire expects.
type QueryRequest struct {
	Query   bson.M       `json:"query"`
	Options QueryOptions `json:"options"`
}

type QueryOptions struct {
	Select     []string   `json:"select"`
	Populate   []Populate `json:"populate,omitempty"`
	Pagination bool       `json:"pagination"`
}

type Populate struct {
	Path   string   `json:"path"`
	Select []string `json:"select"`
}

// BuildDateFilter translates an optional calendar-date pair into the
// half-open epoch-seconds interval the upstream range query expects.
//
// The lower bound is inclusive at start-of-day UTC; the upper bound is
// exclusive at start of the day after end, which makes the end date itself
// inclusive for any time of day without sub-day arithmetic. A start after
// end yields ok=false and the caller must not issue the query at all.
func BuildDateFilter(start, end *time.Time) (bson.M, bool) {
	if start != nil && end != nil && startOfDayUTC(*start).After(startOfDayUTC(*end)) {
		return nil, false
	}

	filter := bson.M{}
	bounds := bson.M{}
	if start != nil {
		bounds["$gte"] = startOfDayUTC(*start).Unix()
	}
	if end != nil {
		bounds["$lt"] = startOfDayUTC(*end).AddDate(0, 0, 1).Unix()
	}
	if len(bounds) > 0 {
		filter[constants.FieldDateUnix] = bounds
	}
	return filter, true
}

// startOfDayUTC drops any time-of-day component, reading the calendar date
// in UTC.
func startOfDayUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func listOptions() QueryOptions {
	return QueryOptions{
		Select:     []string{constants.FieldID, constants.FieldDateUnix, constants.FieldPayloads},
		Pagination: false,
	}
}

func heaviestOptions() QueryOptions {
	opts := listOptions()
	opts.Populate = []Populate{
		{
			Path:   constants.FieldPayloads,
			Select: []string{constants.FieldID, constants.FieldMassKg},
		},
	}
	return opts
}
