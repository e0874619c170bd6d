package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocations_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Locations
		empty bool
	}{
		{"single string", `"Paris, France"`, Locations{"Paris, France"}, false},
		{"array", `["Kyoto","Osaka"]`, Locations{"Kyoto", "Osaka"}, false},
		{"blank string", `"  "`, Locations{}, true},
		{"null", `null`, nil, true},
		{"blank entries", `["", " "]`, Locations{"", " "}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Locations
			require.NoError(t, json.Unmarshal([]byte(tc.input), &got))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.empty, got.Empty())
		})
	}

	var bad Locations
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestEpochMillis_UnmarshalJSON(t *testing.T) {
	var body struct {
		A EpochMillis `json:"a"`
		B EpochMillis `json:"b"`
		C EpochMillis `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":1717200000123,"b":"1717200000456"}`), &body))

	assert.Equal(t, EpochMillis(1717200000123), body.A)
	assert.Equal(t, EpochMillis(1717200000456), body.B)
	assert.Equal(t, EpochMillis(0), body.C)
	assert.Equal(t, int64(1717200000123), body.A.Time().UnixMilli())

	var bad EpochMillis
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
}

func TestLocations_ValueAndScan(t *testing.T) {
	v, err := Locations{"Tom & Jerry's <house>", "Paris, France", `C:\Trips`}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"Tom & Jerry's <house>","Paris, France","C:\\Trips"}`, v)

	empty, err := Locations(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `{}`, empty)

	var got Locations
	require.NoError(t, got.Scan([]byte(`{Kyoto,"Paris, France","C:\\Trips"}`)))
	assert.Equal(t, Locations{"Kyoto", "Paris, France", `C:\Trips`}, got)

	require.NoError(t, got.Scan(nil))
	assert.Equal(t, Locations{}, got)

	assert.Error(t, got.Scan(42))
}
