package iterm2img

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDimensionString(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimension
		want string
		auto bool
	}{
		{name: "zero value", dim: Dimension{}, want: "auto", auto: true},
		{name: "auto", dim: Auto(), want: "auto", auto: true},
		{name: "cells", dim: Cells(5), want: "5"},
		{name: "pixels", dim: Pixels(100), want: "100px"},
		{name: "percent", dim: Percent(50), want: "50%"},
		{name: "zero cells", dim: Cells(0), want: "0"},
		{name: "negative clamps", dim: Pixels(-10), want: "0px"},
		{name: "unknown unit", dim: Dimension{Unit: Unit(42), Value: 3}, want: "auto", auto: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dim.String())
			assert.Equal(t, tt.auto, tt.dim.IsAuto())
		})
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in      string
		want    Dimension
		wantErr bool
	}{
		{in: "", want: Auto()},
		{in: "auto", want: Auto()},
		{in: "AUTO", want: Auto()},
		{in: "5", want: Cells(5)},
		{in: " 7 ", want: Cells(7)},
		{in: "100px", want: Pixels(100)},
		{in: "50%", want: Percent(50)},
		{in: "0", want: Cells(0)},
		{in: "-5", wantErr: true},
		{in: "px", wantErr: true},
		{in: "%", wantErr: true},
		{in: "10em", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "99999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDimension(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimension)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDimensionTextRoundTrip(t *testing.T) {
	for _, d := range []Dimension{Auto(), Cells(12), Pixels(300), Percent(75)} {
		text, err := d.MarshalText()
		require.NoError(t, err)

		var got Dimension
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, d, got)
	}
}

func TestDimensionYAML(t *testing.T) {
	type size struct {
		Width  Dimension `yaml:"width"`
		Height Dimension `yaml:"height"`
	}

	tests := []struct {
		name    string
		doc     string
		want    size
		wantErr bool
	}{
		{name: "bare number is cells", doc: "width: 5\nheight: 10", want: size{Cells(5), Cells(10)}},
		{name: "units", doc: "width: 100px\nheight: 50%", want: size{Pixels(100), Percent(50)}},
		{name: "quoted", doc: "width: \"auto\"\nheight: '20px'", want: size{Auto(), Pixels(20)}},
		{name: "missing stays auto", doc: "width: 3", want: size{Cells(3), Auto()}},
		{name: "bad value", doc: "width: wide", wantErr: true},
		{name: "not a scalar", doc: "width: [1, 2]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got size
			err := yaml.Unmarshal([]byte(tt.doc), &got)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimension)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
