package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"modiscli/internal/config"
	apperrors "modiscli/internal/errors"
)

func testConfig(t *testing.T, station string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Station.ID = station
	cfg.Station.InputDir = t.TempDir()
	cfg.Export.OutputDir = filepath.Join(t.TempDir(), "Monthly_data")
	return cfg
}

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestPipeline_Run(t *testing.T) {
	cfg := testConfig(t, "X")
	cfg.Export.CSVMirror = true

	writeInput(t, cfg.Station.InputDir, "MODIS_TimeSeries_16Day_X.csv", `name,date,year,month,NDVI,EVI,VCI
X,2020-02-02,2020,2,0.40,-9999,-9999
X,2020-02-18,2020,2,0.60,-9999,-9999
`)
	writeInput(t, cfg.Station.InputDir, "MODIS_TimeSeries_8Day_X.csv", `name,date,year,month,LAI,FAPAR,LST
X,2020-02-10,2020,2,-9999,-9999,300.0
`)

	p := New(cfg, nil)
	out, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Export.OutputDir, "MODIS_Monthly_X.xlsx"), out)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Monthly")
	require.NoError(t, err)
	require.Len(t, rows, 2, "exactly one data row for the single station-month")

	get := func(cell string) string {
		v, err := f.GetCellValue("Monthly", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "X", get("A2"))
	assert.Equal(t, "2020", get("B2"))
	assert.Equal(t, "2", get("C2"))
	assert.Equal(t, "0.5", get("D2"), "NDVI mean of 0.40 and 0.60")
	assert.Equal(t, "", get("E2"), "all-sentinel EVI month must be missing")
	assert.Equal(t, "", get("G2"), "all-sentinel LAI month must be missing")
	assert.Equal(t, "300", get("I2"))
	assert.Equal(t, "2020-02-01", get("J2"))

	// CSV mirror written alongside the workbook.
	_, err = os.Stat(filepath.Join(cfg.Export.OutputDir, "MODIS_Monthly_X.csv"))
	require.NoError(t, err)
}

func TestPipeline_Run_OneSidedMonths(t *testing.T) {
	cfg := testConfig(t, "Y")

	writeInput(t, cfg.Station.InputDir, "MODIS_TimeSeries_16Day_Y.csv", `name,date,year,month,NDVI,EVI,VCI
Y,2020-03-05,2020,3,0.61,0.30,48.0
`)
	writeInput(t, cfg.Station.InputDir, "MODIS_TimeSeries_8Day_Y.csv", `name,date,year,month,LAI,FAPAR,LST
Y,2020-04-06,2020,4,1.4,0.52,305.5
`)

	p := New(cfg, nil)
	out, err := p.Run(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Monthly")
	require.NoError(t, err)
	require.Len(t, rows, 3, "both one-sided months survive the outer join")

	march, err := f.GetCellValue("Monthly", "D2")
	require.NoError(t, err)
	assert.Equal(t, "0.61", march)
	marchLST, err := f.GetCellValue("Monthly", "I2")
	require.NoError(t, err)
	assert.Equal(t, "", marchLST)

	aprilNDVI, err := f.GetCellValue("Monthly", "D3")
	require.NoError(t, err)
	assert.Equal(t, "", aprilNDVI)
	aprilLST, err := f.GetCellValue("Monthly", "I3")
	require.NoError(t, err)
	assert.Equal(t, "305.5", aprilLST)
}

func TestPipeline_Run_MissingInput(t *testing.T) {
	cfg := testConfig(t, "Z")
	// No input files written.

	p := New(cfg, nil)
	_, err := p.Run(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
}

func TestPipeline_Run_Rounding(t *testing.T) {
	cfg := testConfig(t, "R")

	writeInput(t, cfg.Station.InputDir, "MODIS_TimeSeries_16Day_R.csv", `name,date,year,month,NDVI,EVI,VCI
R,2020-05-08,2020,5,0.123449,0.1,1
R,2020-05-24,2020,5,0.123450,0.1,1
`)
	writeInput(t, cfg.Station.InputDir, "MODIS_TimeSeries_8Day_R.csv", `name,date,year,month,LAI,FAPAR,LST
R,2020-05-08,2020,5,1,1,1
`)

	p := New(cfg, nil)
	out, err := p.Run(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	// Mean 0.1234495 rounds to 0.1234 at four digits.
	ndvi, err := f.GetCellValue("Monthly", "D2")
	require.NoError(t, err)
	assert.Equal(t, "0.1234", ndvi)
}
