package quadra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fd-lab/quadra/pkg/quadra"
)

func validPacking() quadra.Packing {
	return quadra.Packing{
		Width:  3,
		Height: 2,
		Area:   6,
		Squares: []quadra.Square{
			{Size: 2, X: 0, Y: 0},
			{Size: 1, X: 2, Y: 0},
		},
	}
}

func TestPackingValidate(t *testing.T) {
	type tc struct {
		Name    string
		Mutate  func(p *quadra.Packing)
		WantErr string
	}

	for _, tt := range []tc{
		{
			Name:   "valid packing",
			Mutate: func(p *quadra.Packing) {},
		},
		{
			Name:    "non-positive side",
			Mutate:  func(p *quadra.Packing) { p.Height = 0 },
			WantErr: "non-positive side",
		},
		{
			Name:    "taller than wide",
			Mutate:  func(p *quadra.Packing) { p.Width, p.Height = 2, 3 },
			WantErr: "canonical orientation",
		},
		{
			Name:    "area mismatch",
			Mutate:  func(p *quadra.Packing) { p.Area = 7 },
			WantErr: "does not match",
		},
		{
			Name:    "size out of range",
			Mutate:  func(p *quadra.Packing) { p.Squares[1].Size = 3 },
			WantErr: "does not belong to 1..2",
		},
		{
			Name:    "duplicate size",
			Mutate:  func(p *quadra.Packing) { p.Squares[1].Size = 2 },
			WantErr: "appears twice",
		},
		{
			Name:    "square past the right border",
			Mutate:  func(p *quadra.Packing) { p.Squares[1].X = 3 },
			WantErr: "lies outside",
		},
		{
			Name:    "square below the rectangle",
			Mutate:  func(p *quadra.Packing) { p.Squares[1].Y = -1 },
			WantErr: "lies outside",
		},
		{
			Name:    "overlapping squares",
			Mutate:  func(p *quadra.Packing) { p.Squares[1].X = 1 },
			WantErr: "overlap",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			p := validPacking()
			tt.Mutate(&p)
			err := p.Validate()
			if tt.WantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.WantErr)
			}
		})
	}
}

func TestInvalidSizeError(t *testing.T) {
	assert.Equal(t, "invalid instance size 0: must be at least 1", quadra.InvalidSizeError{N: 0}.Error())
	assert.Equal(t, "invalid instance size -4: must be at least 1", quadra.InvalidSizeError{N: -4}.Error())
}

func TestExhaustedError(t *testing.T) {
	assert.Equal(t,
		"search exhausted without a packing for n=9: derived bounds should always admit one",
		quadra.ExhaustedError{N: 9}.Error())
}
