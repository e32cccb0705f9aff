package team

import "testing"

func TestSubstringMatcher(t *testing.T) {
	teams := []Team{
		{ID: 61, Name: "Chelsea FC"},
		{ID: 66, Name: "ManchesterUnited"},
		{ID: 65, Name: "Manchester City FC"},
	}
	matcher := NewSubstringMatcher()

	tests := []struct {
		name     string
		reported string
		wantID   int64
		wantOK   bool
	}{
		{name: "case insensitive substring", reported: "chelsea", wantID: 61, wantOK: true},
		{name: "space stripped fallback", reported: "Manchester United", wantID: 66, wantOK: true},
		{name: "first match in storage order wins", reported: "Manchester", wantID: 66, wantOK: true},
		{name: "no match", reported: "Real Madrid", wantOK: false},
		{name: "blank name", reported: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matcher.Match(tt.reported, teams)
			if ok != tt.wantOK {
				t.Fatalf("match %q: ok=%v want %v", tt.reported, ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Fatalf("match %q: got team %d want %d", tt.reported, got.ID, tt.wantID)
			}
		})
	}
}
