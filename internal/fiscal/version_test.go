package fiscal

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(v *Version)
		wantErr string
	}{
		{name: "major minor", mutate: func(v *Version) {}},
		{name: "major minor patch", mutate: func(v *Version) { v.Version = "2.1.3" }},
		{name: "missing minor", mutate: func(v *Version) { v.Version = "1" }, wantErr: "version.version"},
		{name: "too many parts", mutate: func(v *Version) { v.Version = "1.0.0.1" }, wantErr: "version.version"},
		{name: "not numeric", mutate: func(v *Version) { v.Version = "a.b" }, wantErr: "version.version"},
		{name: "leading zero", mutate: func(v *Version) { v.Version = "01.2" }, wantErr: "version.version"},
		{name: "blank name", mutate: func(v *Version) { v.Name = " " }, wantErr: "version.name"},
		{name: "missing date", mutate: func(v *Version) { v.Date = Date{} }, wantErr: "version.date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVersion("IRPP")
			tt.mutate(&v)
			err := v.Validate("income tax")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertConfigError(t, err, tt.wantErr)
		})
	}
}

func TestVersionDecode(t *testing.T) {
	var v Version
	err := json.Unmarshal([]byte(`{"name":"ISF","version":"1.2","date":"2023-05-17","comment":"LF 2023"}`), &v)
	require.NoError(t, err)

	assert.Equal(t, "ISF", v.Name)
	assert.Equal(t, time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC), v.Date.Time)
	assert.Equal(t, "ISF v1.2 (2023-05-17)", v.String())

	err = json.Unmarshal([]byte(`{"date":"17/05/2023"}`), &v)
	assert.Error(t, err)
}

func TestConfigErrorMessage(t *testing.T) {
	err := configErr("wealth tax", "threshold", "amount %s is negative", "-1")
	assert.EqualError(t, err, "wealth tax configuration: invalid threshold: amount -1 is negative")
}
