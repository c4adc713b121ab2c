package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/maratik123/tsp/internal/aco"
	"github.com/maratik123/tsp/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	klaxLine = "SUSAP KLAXK2ALAX     0     " +
		"129YHN33563299W118242898E012000128         1800018000C    " +
		"MNAR    LOS ANGELES INTL              310231906"
	kseaLine = "SUSAP KSEAK1ASEA     0     " +
		"119YHN47265960W122184240E016000432         1800018000C    " +
		"MNAR    SEATTLE-TACOMA INTL           065001807"
	kdenLine = "SUSAP KDENK2ADEN     0     " +
		"160YHN39514200W104402340E008005434         1800018000C    " +
		"MNAR    DENVER INTL                   630481208"
)

// corrupt the latitude hemisphere so the line is malformed rather than
// merely inapplicable.
var badLine = klaxLine[:32] + "X" + klaxLine[33:]

func testWorkflow(data string) (*workflow, *stubSource, *stubFilter, *stubImages, *recordingUI) {
	source := &stubSource{data: data}
	filter := &stubFilter{}
	images := &stubImages{}
	ui := &recordingUI{}
	w := NewWorkflow(source, filter, images, ui).(*workflow)
	return w, source, filter, images, ui
}

func solveParams() aco.Params {
	return aco.Params{
		Ants:        5,
		Iterations:  10,
		Evaporation: 0.1,
		Alpha:       1,
		Beta:        1,
		Seed:        1,
	}
}

func TestWorkflow_List(t *testing.T) {
	data := klaxLine + "\n" + "garbage\n" + badLine + "\n" + kseaLine + "\n"
	w, source, filter, _, ui := testWorkflow(data)

	err := w.List(ListArgs{Source: "cifp.dat", Filter: "filter.txt"})
	require.NoError(t, err)

	assert.Equal(t, "cifp.dat", source.opened)
	assert.Equal(t, "filter.txt", filter.read)

	assert.Equal(t, 1, ui.airportsCalls)
	require.Len(t, ui.retained, 2)
	assert.Equal(t, "KLAX", ui.retained[0].ICAO)
	assert.Equal(t, "KSEA", ui.retained[1].ICAO)

	// The corrupted line warns with its position; the garbage line is
	// silently inapplicable.
	require.Len(t, ui.warnings, 1)
	assert.Contains(t, ui.warnings[0], "line 3")
}

func TestWorkflow_ListWithFilter(t *testing.T) {
	data := klaxLine + "\n" + kseaLine + "\n" + kdenLine + "\n"
	w, _, filter, _, ui := testWorkflow(data)
	filter.set = catalog.FilterSet{"KLAX": {}, "KSEA": {}}

	err := w.List(ListArgs{Source: "-", Unfiltered: true})
	require.NoError(t, err)

	require.Len(t, ui.retained, 2)
	require.Len(t, ui.rejected, 1)
	assert.Equal(t, "KDEN", ui.rejected[0].ICAO)
}

func TestWorkflow_ListTooFewAirports(t *testing.T) {
	w, _, _, _, _ := testWorkflow(klaxLine + "\n")

	err := w.List(ListArgs{Source: "-"})
	assert.ErrorIs(t, err, catalog.ErrTooFewAirports)
}

func TestWorkflow_ListErrors(t *testing.T) {
	t.Run("filter read fails", func(t *testing.T) {
		w, _, filter, _, _ := testWorkflow("")
		filter.readErr = errors.New("no such file")

		err := w.List(ListArgs{Source: "-", Filter: "missing"})
		assert.ErrorContains(t, err, "read filter")
	})

	t.Run("source open fails", func(t *testing.T) {
		w, source, _, _, _ := testWorkflow("")
		source.openErr = errors.New("no such file")

		err := w.List(ListArgs{Source: "missing"})
		assert.ErrorContains(t, err, "open source")
	})
}

func TestWorkflow_Optimize(t *testing.T) {
	data := klaxLine + "\n" + kseaLine + "\n" + kdenLine + "\n"
	w, _, _, images, ui := testWorkflow(data)

	err := w.Optimize(context.Background(), OptimizeArgs{
		ListArgs: ListArgs{Source: "-"},
		Params:   solveParams(),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, ui.startedWith)
	assert.Equal(t, 10, ui.progressCalls)
	assert.True(t, ui.finished)
	assert.Zero(t, ui.airportsCalls)
	assert.Zero(t, images.calls)

	require.NotNil(t, ui.tour)
	assert.Len(t, ui.tour.Legs, 3)
	assert.Positive(t, ui.tour.Length)
	assert.InDelta(t, ui.tour.Length, ui.lastBest, 1e-9)
	assert.Zero(t, ui.tour.Fallbacks)
}

func TestWorkflow_OptimizePrintsAirports(t *testing.T) {
	data := klaxLine + "\n" + kseaLine + "\n"
	w, _, _, _, ui := testWorkflow(data)

	err := w.Optimize(context.Background(), OptimizeArgs{
		ListArgs:      ListArgs{Source: "-"},
		PrintAirports: true,
		Params:        solveParams(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ui.airportsCalls)
}

func TestWorkflow_OptimizeWritesOutputs(t *testing.T) {
	data := klaxLine + "\n" + kseaLine + "\n"
	w, _, _, images, _ := testWorkflow(data)

	dir := t.TempDir()
	outPath := filepath.Join(dir, "tour.txt")

	err := w.Optimize(context.Background(), OptimizeArgs{
		ListArgs: ListArgs{Source: "-"},
		Output:   outPath,
		Images:   filepath.Join(dir, "images"),
		Params:   solveParams(),
	})
	require.NoError(t, err)

	report, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "KLAX LOS ANGELES INTL")
	assert.Contains(t, string(report), "total: ")

	assert.Equal(t, 1, images.calls)
	assert.Equal(t, filepath.Join(dir, "images", "tour.png"), images.path)
	assert.Len(t, images.airports, 2)
	assert.Len(t, images.tour, 2)
}

func TestWorkflow_OptimizeInvalidExcept(t *testing.T) {
	data := klaxLine + "\n" + kseaLine + "\n"
	w, _, _, _, _ := testWorkflow(data)

	err := w.Optimize(context.Background(), OptimizeArgs{
		ListArgs: ListArgs{Source: "-"},
		Except:   []string{"KLAXKSEA"},
		Params:   solveParams(),
	})
	assert.ErrorContains(t, err, "except pair")
}

func TestWorkflow_OptimizeInvalidParams(t *testing.T) {
	data := klaxLine + "\n" + kseaLine + "\n"
	w, _, _, _, ui := testWorkflow(data)

	p := solveParams()
	p.Ants = 0
	err := w.Optimize(context.Background(), OptimizeArgs{
		ListArgs: ListArgs{Source: "-"},
		Params:   p,
	})
	assert.ErrorIs(t, err, aco.ErrNoAnts)
	assert.True(t, ui.finished)
	assert.Nil(t, ui.tour)
}

func TestWorkflow_OptimizeImageWriteFails(t *testing.T) {
	data := klaxLine + "\n" + kseaLine + "\n"
	w, _, _, images, _ := testWorkflow(data)
	images.writeErr = errors.New("disk full")

	err := w.Optimize(context.Background(), OptimizeArgs{
		ListArgs: ListArgs{Source: "-"},
		Images:   "images",
		Params:   solveParams(),
	})
	assert.ErrorContains(t, err, "render tour image")
}
