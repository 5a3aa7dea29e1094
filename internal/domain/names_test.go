package domain

import "testing"

func TestStripDecorations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		decorations []string
		want        string
	}{
		{"张三流水", []string{"流水"}, "张三"},
		{"A_B_C", []string{"_B", "_C"}, "A"},
		{"李四活期账户流水", []string{"活期账户流水"}, "李四"},
		{"王五", nil, "王五"},
		{"报告可疑交易逐笔明细表—赵六", []string{"报告可疑交易逐笔明细表—"}, "赵六"},
	}

	for _, tt := range tests {
		if got := StripDecorations(tt.name, tt.decorations); got != tt.want {
			t.Fatalf("StripDecorations(%q, %v) = %q, want %q", tt.name, tt.decorations, got, tt.want)
		}
	}
}

func TestFileStem(t *testing.T) {
	t.Parallel()

	if got := FileStem("工商银行/张三.xlsx"); got != "张三" {
		t.Fatalf("unexpected stem %q", got)
	}
}
