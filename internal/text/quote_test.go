package text

import "testing"

func TestOpenQuote(t *testing.T) {
	tests := []struct {
		input  string
		want   rune
		wantOK bool
	}{
		{`he said "hi`, '"', true},
		{`it's \'fine\'`, 0, false},
		{`'a' "b"`, 0, false},
		{`echo 'unterminated`, '\'', true},
		{`echo "it's"`, 0, false},
		{`echo \"`, 0, false},
		{`echo \\"`, '"', true},
		{`'a\'`, 0, false},
		{``, 0, false},
	}
	for _, tt := range tests {
		got, ok := OpenQuote(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("OpenQuote(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
