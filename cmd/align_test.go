package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
)

func runAlign(t *testing.T, args ...string) (string, error) {
	t.Helper()
	alignCmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"align"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func Test_alignExec(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			"identical and substituted",
			[]string{"--ref", "ACGT", "ACGT", "AGGT"},
			"query1\t0\t4=\t20\nquery2\t0\t1=1X2=\t11\n",
			false,
		},
		{
			"window offset and lower case",
			[]string{"--ref", "ttacgt", "--ref-start", "100", "acgtgg"},
			"query1\t102\t4=2S\t16\n",
			false,
		},
		{
			"scoring flags",
			[]string{"--ref", "ACGT", "--match", "1", "--mismatch", "-1", "AGGT"},
			"query1\t0\t1=1X2=\t2\n",
			false,
		},
		{
			"identity filter",
			[]string{"--ref", "ACGT", "--min-identity", "0.9", "-t", "2", "ACGT", "AGGT"},
			"query1\t0\t4=\t20\n",
			false,
		},
		{
			"invalid base",
			[]string{"--ref", "ACGT", "ACJT"},
			"",
			true,
		},
		{
			"gap in reference",
			[]string{"--ref", "AC-T", "ACGT"},
			"",
			true,
		},
		{
			"missing reference",
			[]string{"ACGT"},
			"",
			true,
		},
		{
			"missing query",
			[]string{"--ref", "ACGT"},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runAlign(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("align error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("align output = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_parseSequence(t *testing.T) {
	tests := []struct {
		seq     string
		want    string
		wantErr bool
	}{
		{"acgtn", "ACGTN", false},
		{"ACGTRYKM", "ACGTRYKM", false},
		{"", "", true},
		{"AC GT", "", true},
		{"ACGU", "", true},
	}
	for _, tt := range tests {
		got, err := parseSequence(tt.seq)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSequence(%q) error = %v, wantErr %v", tt.seq, err, tt.wantErr)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("parseSequence(%q) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}
