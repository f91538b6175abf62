package packages

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
)

func TestParseInstalled(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name: "Typical apt output",
			output: `Listing...
i2c-tools/stable,now 4.3-2+b3 arm64 [installed]
python3-smbus/stable,now 4.3-2+b3 arm64 [installed]
zenity/stable,now 3.44.0-1 arm64 [installed,automatic]
`,
			want: []string{"i2c-tools", "python3-smbus", "zenity"},
		},
		{
			name:   "Header only",
			output: "Listing...\n",
			want:   nil,
		},
		{
			name:   "Empty output",
			output: "",
			want:   nil,
		},
	}

	installer := Installer{Pkg: Apt{}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := installer.parseInstalled(tt.output)

			want := mapset.NewSet[string]()
			for _, pkg := range tt.want {
				want.Add(pkg)
			}
			if !got.Equal(want) {
				t.Errorf("parseInstalled() = %v, want %v", got, want)
			}
		})
	}
}
