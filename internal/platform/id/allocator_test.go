package id

import "testing"

func TestRandomTeamIDAllocator_StaysInSyntheticRange(t *testing.T) {
	allocator := NewRandomTeamIDAllocator()

	for i := 0; i < 1000; i++ {
		got, err := allocator.NextTeamID()
		if err != nil {
			t.Fatalf("allocate team id: %v", err)
		}
		if got < SyntheticTeamIDMin || got > SyntheticTeamIDMax {
			t.Fatalf("id %d outside synthetic range [%d, %d]", got, SyntheticTeamIDMin, SyntheticTeamIDMax)
		}
		if !IsSynthetic(got) {
			t.Fatalf("expected %d to be reported synthetic", got)
		}
	}

	if IsSynthetic(57) {
		t.Fatal("provider-sourced id must not be synthetic")
	}
}
