package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalAcceptsBothLayouts(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-02-14"`), &d))
	assert.Equal(t, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2026-02-14T08:15:00Z"`), &d))
	assert.Equal(t, time.Date(2026, 2, 14, 8, 15, 0, 0, time.UTC), d.Time)
}

func TestDateUnmarshalRejectsUnknownLayout(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"14/02/2026"`), &d))
}

func TestDateRoundTrip(t *testing.T) {
	d := Date{time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)}
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-02-14T00:00:00Z"`, string(raw))
}
