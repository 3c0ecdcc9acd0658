package flagx

import (
	"reflect"
	"testing"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-b", "http://api.local", "-x", "junk"},
			allowed: []string{"-b"},
			want:    []string{"-b", "http://api.local"},
		},
		{
			name:    "equals form",
			args:    []string{"--base=http://api.local", "--other=1"},
			allowed: []string{"--base"},
			want:    []string{"--base=http://api.local"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-b", "addr"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b", "2"},
			allowed: []string{"-z"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}
