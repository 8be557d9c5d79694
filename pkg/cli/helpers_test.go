package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/docsmith/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		value   string
		want    serializer.Format
		wantErr bool
	}{
		{"yaml", serializer.FormatYAML, false},
		{"json", serializer.FormatJSON, false},
		{"table", serializer.FormatTable, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cmd := &cli.Command{
				Flags:  []cli.Flag{&cli.StringFlag{Name: "format", Value: tt.value}},
				Action: func(context.Context, *cli.Command) error { return nil },
			}
			if err := cmd.Run(t.Context(), []string{"test"}); err != nil {
				t.Fatalf("command setup failed: %v", err)
			}

			got, err := parseOutputFormat(cmd)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseOutputFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
