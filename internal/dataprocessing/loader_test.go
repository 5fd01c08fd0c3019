package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "modiscli/internal/errors"
	"modiscli/pkg/contracts/domain"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSeries(t *testing.T) {
	path := writeTempCSV(t, `name,date,year,month,NDVI,EVI,VCI
ALGER,2020-02-02,2020,2,0.40,0.21,55.2
ALGER,2020-02-18,2020,2,0.60,-9999,
`)

	observations, err := LoadSeries(path, domain.Vars16Day, -9999)
	require.NoError(t, err)
	require.Len(t, observations, 2)

	first := observations[0]
	assert.Equal(t, "ALGER", first.Name)
	assert.Equal(t, 2020, first.Year)
	assert.Equal(t, 2, first.Month)
	assert.Equal(t, time.Date(2020, 2, 2, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, domain.NewValue(0.40), first.Values["NDVI"])
	assert.Equal(t, domain.NewValue(0.21), first.Values["EVI"])
	assert.Equal(t, domain.NewValue(55.2), first.Values["VCI"])

	second := observations[1]
	assert.Equal(t, domain.NewValue(0.60), second.Values["NDVI"])
	assert.False(t, second.Values["EVI"].Valid, "sentinel reading must load as missing")
	assert.False(t, second.Values["VCI"].Valid, "empty cell must load as missing")
}

func TestLoadSeries_MissingFile(t *testing.T) {
	_, err := LoadSeries(filepath.Join(t.TempDir(), "absent.csv"), domain.Vars16Day, -9999)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
}

func TestLoadSeries_MissingColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no date column", "name,year,month,NDVI,EVI,VCI"},
		{"no variable column", "name,date,year,month,NDVI,EVI"},
		{"no name column", "date,year,month,NDVI,EVI,VCI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.header+"\n")

			_, err := LoadSeries(path, domain.Vars16Day, -9999)
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrTypeSchema, appErr.Type)
		})
	}
}

func TestLoadSeries_BadKeyValues(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"unparseable date", "ALGER,02.18.2020,2020,2,0.4,0.2,55"},
		{"unparseable year", "ALGER,2020-02-18,twenty,2,0.4,0.2,55"},
		{"unparseable month", "ALGER,2020-02-18,2020,feb,0.4,0.2,55"},
		{"month out of range", "ALGER,2020-02-18,2020,13,0.4,0.2,55"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, "name,date,year,month,NDVI,EVI,VCI\n"+tt.row+"\n")

			_, err := LoadSeries(path, domain.Vars16Day, -9999)
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrTypeParsing, appErr.Type)
		})
	}
}

func TestLoadSeries_BOMHeader(t *testing.T) {
	path := writeTempCSV(t, "\ufeffname,date,year,month,LAI,FAPAR,LST\nALGER,2020-02-02,2020,2,1.1,0.5,300\n")

	observations, err := LoadSeries(path, domain.Vars8Day, -9999)
	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, domain.NewValue(300), observations[0].Values["LST"])
}

func TestLoadSeries_NonNumericReadingIsMissing(t *testing.T) {
	path := writeTempCSV(t, "name,date,year,month,NDVI,EVI,VCI\nALGER,2020-02-02,2020,2,n/a,0.2,55\n")

	observations, err := LoadSeries(path, domain.Vars16Day, -9999)
	require.NoError(t, err)
	assert.False(t, observations[0].Values["NDVI"].Valid)
	assert.True(t, observations[0].Values["EVI"].Valid)
}

func TestLoadSeries_CustomSentinel(t *testing.T) {
	path := writeTempCSV(t, "name,date,year,month,NDVI,EVI,VCI\nALGER,2020-02-02,2020,2,-255,0.2,55\n")

	observations, err := LoadSeries(path, domain.Vars16Day, -255)
	require.NoError(t, err)
	assert.False(t, observations[0].Values["NDVI"].Valid)
}
