package cli

import "testing"

func TestHumanSize(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{96, "96 B"},
		{2048, "2.0 KB"},
		{1536 * 1024, "1.5 MB"},
	}
	for _, tc := range cases {
		if got := humanSize(tc.n); got != tc.want {
			t.Errorf("humanSize(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestAddressWidthTracksColumnReserve(t *testing.T) {
	reserve := nameWidth + kindWidth + stateWidth + sizeWidth + ageWidth + gapWidth
	if got := addressWidth(reserve + 40); got != 40 {
		t.Fatalf("addressWidth = %d, want the 40 columns the fixed columns leave over", got)
	}
	if got := addressWidth(20); got != minAddrWidth {
		t.Fatalf("addressWidth on a narrow terminal = %d, want floor %d", got, minAddrWidth)
	}
}

func TestCellPadsAndTruncates(t *testing.T) {
	if got := cell("ab", 5); got != "ab   " {
		t.Fatalf("cell pad = %q", got)
	}
	if got := cell("abcdefgh", 5); len([]rune(got)) != 5 {
		t.Fatalf("cell truncate = %q, want width 5", got)
	}
}
