package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		opts    *Options
		want    []float64
		wantErr string
	}{
		{
			name:  "default options",
			input: "time,value\n1,10.5\n2,11\n3,-0.25\n",
			want:  []float64{10.5, 11, -0.25},
		},
		{
			name:  "named column",
			input: "a,temp,b\n1,20.5,x\n2,21,y\n",
			opts:  &Options{Column: "temp", HasHeader: true},
			want:  []float64{20.5, 21},
		},
		{
			name:  "column match ignores case and spacing",
			input: " Value ,other\n7,x\n8,y\n",
			want:  []float64{7, 8},
		},
		{
			name:  "headerless first column",
			input: "1\n2\n3\n",
			opts:  &Options{},
			want:  []float64{1, 2, 3},
		},
		{
			name:  "semicolon delimiter",
			input: "value;note\n4;a\n5;b\n",
			opts:  &Options{Column: "value", Delimiter: ';', HasHeader: true},
			want:  []float64{4, 5},
		},
		{
			name:  "blank and NA cells skipped",
			input: "value\n1\n\"\"\nNA\nNaN\nnull\n2\n",
			want:  []float64{1, 2},
		},
		{
			name:    "missing column",
			input:   "a,b\n1,2\n",
			wantErr: `column "value" not found`,
		},
		{
			name:    "malformed number",
			input:   "value\n1\nbogus\n",
			wantErr: "row 2",
		},
		{
			name:    "no values",
			input:   "value\nNA\n",
			wantErr: "no numeric values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadReader(strings.NewReader(tt.input), tt.opts)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSaveWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := SaveWriter(&buf, []string{"raw", "smooth"}, [][]float64{{1, 2.5}, {0, 1.75}})
	require.NoError(t, err)
	require.Equal(t, "raw,smooth\n1,0\n2.5,1.75\n", buf.String())
}

func TestSaveWriterErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := SaveWriter(&buf, []string{"a"}, [][]float64{{1}, {2}})
	require.ErrorContains(t, err, "header")

	err = SaveWriter(&buf, nil, nil)
	require.ErrorContains(t, err, "no columns")

	err = SaveWriter(&buf, []string{"a", "b"}, [][]float64{{1, 2}, {1}})
	require.ErrorContains(t, err, "lengths differ")
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "series.csv")

	raw := []float64{1.5, 2, 3.25, 4}
	smooth := []float64{0, 1.75, 2.625, 3.625}
	require.NoError(t, Save(path, []string{"raw", "smooth"}, [][]float64{raw, smooth}))

	opts := DefaultOptions()
	opts.Column = "smooth"
	got, err := Load(path, opts)
	require.NoError(t, err)
	require.Equal(t, smooth, got)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}
