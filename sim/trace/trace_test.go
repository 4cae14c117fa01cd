package trace

import "testing"

func TestIsValidTraceLevel(t *testing.T) {
	for _, level := range []string{"", "none", "summary", "steps"} {
		if !IsValidTraceLevel(level) {
			t.Errorf("expected %q to be valid", level)
		}
	}
	if IsValidTraceLevel("decisions") {
		t.Error("expected unknown level to be invalid")
	}
}

func TestSeekTrace_Record_ComputesDistanceAndEdge(t *testing.T) {
	// GIVEN a trace over a 200-track disk
	st := NewSeekTrace(200)

	// WHEN two moves are recorded, the second landing on the last track
	st.Record(53, 37)
	st.Record(37, 199)

	// THEN steps are numbered from 1 and distances are absolute
	if len(st.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(st.Records))
	}
	first, second := st.Records[0], st.Records[1]
	if first.Step != 1 || first.Distance != 16 || first.AtEdge {
		t.Errorf("unexpected first record %+v", first)
	}
	if second.Step != 2 || second.Distance != 162 || !second.AtEdge {
		t.Errorf("unexpected second record %+v", second)
	}
}
