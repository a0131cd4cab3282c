package dred

import "testing"

func TestTableRanges(t *testing.T) {
	p0, r, dz, qs := P0(), R(), DeadZone(), QuantScales()
	for i := 0; i < LatentDim; i++ {
		for q := 0; q < QuantLevels; q++ {
			if p0[q][i] < 1 || p0[q][i] >= ProbScale-1 {
				t.Errorf("p0[%d][%d] = %d outside [1, %d]", q, i, p0[q][i], ProbScale-2)
			}
		}
		if r[i] < 1 || r[i] >= ProbScale {
			t.Errorf("r[%d] = %d outside [1, %d]", i, r[i], ProbScale-1)
		}
		if dz[i] == 0 || int(dz[i]) >= DeadZoneScale {
			t.Errorf("dead_zone[%d] = %d outside (0, 1) step", i, dz[i])
		}
		if qs[i] == 0 {
			t.Errorf("quant_scales[%d] = 0", i)
		}
	}

	sp0, sr, sdz, sqs := StateP0(), StateR(), StateDeadZone(), StateQuantScales()
	for i := 0; i < StateDim; i++ {
		if sp0[0][i] < 1 || sr[i] < 1 || sdz[i] == 0 || sqs[i] == 0 {
			t.Errorf("state tables at %d: p0=%d r=%d dz=%d qs=%d", i, sp0[0][i], sr[i], sdz[i], sqs[i])
		}
	}
}

// Accessors hand out copies; editing one never reaches the tables.
func TestTablesReadOnly(t *testing.T) {
	a := QuantScales()
	a[0]++
	if b := QuantScales(); b[0] == a[0] {
		t.Fatal("QuantScales() result aliases the table")
	}
	before := TablesFingerprint()
	p := P0()
	p[3][3] = 0
	if TablesFingerprint() != before {
		t.Fatal("tables changed through an accessor copy")
	}
}

func TestLevelScalesIncreasing(t *testing.T) {
	ls := LevelScales()
	if ls[0] != LevelScaleScale {
		t.Errorf("level 0 scale = %d, want %d", ls[0], LevelScaleScale)
	}
	for q := 1; q < QuantLevels; q++ {
		if ls[q] <= ls[q-1] {
			t.Errorf("level %d scale %d not above level %d scale %d", q, ls[q], q-1, ls[q-1])
		}
	}
}
