package matching

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfu/fixmatch/pkg/fix"
)

func TestBreakdown_AllChecksMatched(t *testing.T) {
	c := NewBuilder().
		OfType(fix.MsgTypeNewOrderList).
		With(fix.TagClOrdID, "ABC").
		WithHeaderField(fix.TagSenderSubID, "XYZ").
		WithGroupField(1, fix.TagNoOrders, fix.TagClOrdID, "DEF").
		MustBuild()

	bd, err := NewEvaluator().Breakdown(c, newScenarioMessage(true))
	require.NoError(t, err)
	assert.True(t, bd.Matched)
	assert.Equal(t, 5, bd.Total)
	assert.Equal(t, 5, bd.Passed)
	assert.Equal(t, "all checks matched", bd.Reason)
}

func TestBreakdown_DoesNotShortCircuit(t *testing.T) {
	c := NewBuilder().
		OfType(fix.MsgTypeExecutionReport).
		With(fix.TagClOrdID, "ABD").
		With(fix.TagSymbol, "EUR/USD").
		WithHeaderField(fix.TagSenderSubID, "XYZ").
		WithGroupField(2, fix.TagNoOrders, fix.TagClOrdID, "DEF").
		MustBuild()

	bd, err := NewEvaluator().Breakdown(c, newScenarioMessage(true))
	require.NoError(t, err)
	assert.False(t, bd.Matched)
	require.Len(t, bd.Checks, 6)
	assert.Equal(t, 1, bd.Passed)

	assert.Equal(t, "type", bd.Checks[0].Gate)
	assert.Equal(t, "ExecutionReport", bd.Checks[0].Expected)
	assert.Equal(t, "NewOrderList", bd.Checks[0].Actual)

	assert.Equal(t, "body", bd.Checks[1].Gate)
	assert.Equal(t, "ABC", bd.Checks[1].Actual)
	assert.True(t, bd.Checks[1].Present)

	assert.False(t, bd.Checks[2].Present)
	assert.True(t, bd.Checks[3].Matched)

	require.NotNil(t, bd.Checks[4].Group)
	assert.Equal(t, 2, bd.Checks[4].Group.Occurrence)
	assert.Equal(t, "(missing)", bd.Checks[4].Actual)
	assert.False(t, bd.Checks[5].Matched)

	assert.Equal(t, "header 50 matched, but type expected ExecutionReport, got NewOrderList", bd.Reason)
}

func TestBreakdown_UnsupportedValue(t *testing.T) {
	c := NewBuilder().WithGroupField(4, fix.TagNoOrders, fix.TagClOrdID, struct{}{}).MustBuild()
	_, err := NewEvaluator().Breakdown(c, newScenarioMessage(true))
	assert.True(t, errors.Is(err, ErrUnsupportedValue))
}

func TestGenerateReason(t *testing.T) {
	group := GroupAddress{Occurrence: 1, Tag: fix.TagNoOrders}
	tests := []struct {
		name   string
		checks []CheckResult
		want   string
	}{
		{"empty", nil, "no checks to run"},
		{
			"field missing",
			[]CheckResult{{Gate: "body", Tag: 11, Expected: "ABC"}},
			`body 11 expected "ABC", field missing`,
		},
		{
			"two matched then group field",
			[]CheckResult{
				{Gate: "body", Tag: 11, Expected: "ABC", Actual: "ABC", Present: true, Matched: true},
				{Gate: "header", Tag: 50, Expected: "XYZ", Actual: "XYZ", Present: true, Matched: true},
				{Gate: "group", Group: &group, Expected: "present", Actual: "present", Present: true, Matched: true},
				{Gate: "group", Group: &group, Tag: 11, Expected: "ZZZ", Actual: "DEF", Present: true},
			},
			`body 11, header 50, and 1. group 73 matched, but 1. group 73 field 11 expected "ZZZ", got "DEF"`,
		},
		{
			"missing group",
			[]CheckResult{
				{Gate: "body", Tag: 11, Matched: true},
				{Gate: "group", Group: &group, Expected: "present", Actual: "(missing)"},
			},
			"body 11 matched, but 1. group 73 missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateReason(tt.checks))
		})
	}
}

func TestBreakdown_MissingGroupChecks(t *testing.T) {
	c := NewBuilder().
		WithGroupField(2, fix.TagNoOrders, fix.TagClOrdID, "DEF").
		MustBuild()

	bd, err := NewEvaluator().Breakdown(c, newScenarioMessage(true))
	require.NoError(t, err)

	addr := &GroupAddress{Occurrence: 2, Tag: fix.TagNoOrders}
	want := []CheckResult{
		{Gate: "group", Group: addr, Expected: "present", Actual: "(missing)"},
		{Gate: "group", Group: addr, Tag: fix.TagClOrdID, Kind: "text", Expected: "DEF"},
	}
	if diff := cmp.Diff(want, bd.Checks); diff != "" {
		t.Errorf("checks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, bd.Passed)
}
