package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "iso date", input: "2024-03-15", want: "Friday, March 15, 2024"},
		{name: "iso date time", input: "2024-03-15T18:30:00", want: "Friday, March 15, 2024"},
		{name: "rfc1123", input: "Fri, 15 Mar 2024 10:00:00 +0000", want: "Friday, March 15, 2024"},
		{name: "long form", input: "March 15, 2024", want: "Friday, March 15, 2024"},
		{name: "display form", input: "Friday, March 15, 2024", want: "Friday, March 15, 2024"},
		{name: "slashes", input: "03/15/2024", want: "Friday, March 15, 2024"},
		{name: "surrounding space", input: "  2024-03-15 ", want: "Friday, March 15, 2024"},
		{name: "garbage", input: "next tuesday-ish", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, time.UTC)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnparseableDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(got))
		})
	}
}

func TestEvent_SetStartDate(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var e Event
		e.SetStartDate("", false, time.UTC)
		assert.Equal(t, DateMissing, e.DateStatus)
		assert.Equal(t, NoDate, e.StartDateFormatted)
		assert.False(t, e.HasDate())
	})

	t.Run("unparseable", func(t *testing.T) {
		var e Event
		e.SetStartDate("sometime soon", true, time.UTC)
		assert.Equal(t, DateInvalid, e.DateStatus)
		assert.Equal(t, InvalidDate, e.StartDateFormatted)
		assert.Equal(t, "sometime soon", e.StartDateRaw)
		assert.True(t, e.StartDate.IsZero())
	})

	t.Run("valid", func(t *testing.T) {
		var e Event
		e.SetStartDate("2024-12-01 09:00", true, time.UTC)
		assert.True(t, e.HasDate())
		assert.Equal(t, "Sunday, December 1, 2024", e.StartDateFormatted)
	})
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)))
	assert.False(t, SameDay(a, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestDateStatus_String(t *testing.T) {
	assert.Equal(t, "missing", DateMissing.String())
	assert.Equal(t, "invalid", DateInvalid.String())
	assert.Equal(t, "valid", DateValid.String())
}

func TestEvent_JSONDateStatus(t *testing.T) {
	e := Event{Title: "Talk"}
	e.SetStartDate("TBD", true, time.UTC)

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date_status":"invalid"`)
	assert.Contains(t, string(data), `"start_date_formatted":"Invalid Date"`)
}
