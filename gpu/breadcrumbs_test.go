package gpu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBreadcrumbScopes(t *testing.T) {
	tracker := NewBreadcrumbTracker(true)

	tracker.Record("Upload")
	tracker.PushScope("ShadowPass")
	tracker.Record("DrawCasters")
	tracker.PushScope("Cascade")
	tracker.Record("Draw")
	tracker.PopScope()
	tracker.PopScope()
	// Unbalanced pops are ignored.
	tracker.PopScope()
	tracker.Record("Present")

	require.Equal(t, []Breadcrumb{
		{Name: "Upload", Scope: -1, Depth: 0, State: BreadcrumbPending},
		{Name: "ShadowPass", Scope: -1, Depth: 0, State: BreadcrumbPending},
		{Name: "DrawCasters", Scope: 1, Depth: 1, State: BreadcrumbPending},
		{Name: "Cascade", Scope: 1, Depth: 1, State: BreadcrumbPending},
		{Name: "Draw", Scope: 3, Depth: 2, State: BreadcrumbPending},
		{Name: "Present", Scope: -1, Depth: 0, State: BreadcrumbPending},
	}, tracker.Records())
}

func TestBreadcrumbLifecycle(t *testing.T) {
	tracker := NewBreadcrumbTracker(true)

	tracker.Record("First")
	tracker.MarkSubmitted()
	tracker.MarkCompleted()
	tracker.Record("Second")
	tracker.MarkSubmitted()

	records := tracker.Records()
	require.Equal(t, BreadcrumbCompleted, records[0].State)
	require.Equal(t, BreadcrumbInProgress, records[1].State)

	report := tracker.GenerateReport()
	require.Contains(t, report, "=== GPU Breadcrumbs ===\n")
	require.Contains(t, report, "[Completed] First\n")
	require.Contains(t, report, "[InProgress] Second\n")
	require.Contains(t, report, "1 of 2 operations did not complete\n")

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(tracker.BuildStatsString()), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "Second", decoded[1]["Name"])
	require.Equal(t, "InProgress", decoded[1]["State"])
	require.Equal(t, float64(-1), decoded[1]["Scope"])

	tracker.Reset()
	require.Empty(t, tracker.Records())
	require.Contains(t, tracker.GenerateReport(), "0 of 0 operations did not complete")
}

func TestDisabledBreadcrumbsRecordNothing(t *testing.T) {
	tracker := NewBreadcrumbTracker(false)
	tracker.Record("Ignored")
	tracker.PushScope("Ignored")
	require.Empty(t, tracker.Records())

	tracker.SetEnabled(true)
	tracker.Record("Kept")
	require.Len(t, tracker.Records(), 1)

	var nilTracker *BreadcrumbTracker
	require.False(t, nilTracker.Enabled())
	nilTracker.Record("Ignored")
	nilTracker.MarkSubmitted()
	nilTracker.Reset()
	require.Nil(t, nilTracker.Records())
	require.Equal(t, "[]", nilTracker.BuildStatsString())
}
