package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, 0.5, 0.7}
	sim, err := Cosine(v, v)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	sim, err := Cosine([]float32{1, 0}, []float32{0, 1})
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-9)
}

func TestCosine_OppositeVectors(t *testing.T) {
	sim, err := Cosine([]float32{1, 2}, []float32{-1, -2})
	assert.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 1e-9)
}

func TestCosine_DimensionMismatch(t *testing.T) {
	_, err := Cosine([]float32{1, 2}, []float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCosine_EmptyVector(t *testing.T) {
	_, err := Cosine(nil, []float32{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCosine_ZeroMagnitude(t *testing.T) {
	sim, err := Cosine([]float32{0, 0}, []float32{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, sim)
}

func TestCosine_RangeBounds(t *testing.T) {
	a := []float32{0.3, -0.2, 0.9, 0.1}
	b := []float32{-0.5, 0.8, 0.2, -0.4}
	sim, err := Cosine(a, b)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, sim, -1.0)
	assert.LessOrEqual(t, sim, 1.0)
}

func TestParseVector_JSONFormat(t *testing.T) {
	v := ParseVector("[0.1, 0.2, 0.3]")
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, v)
}

func TestParseVector_CSVFormat(t *testing.T) {
	v := ParseVector("0.1, 0.2, 0.3")
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, v)
}

func TestParseVector_Malformed(t *testing.T) {
	assert.Nil(t, ParseVector("not a vector"))
	assert.Nil(t, ParseVector("[1, 2, oops]"))
	assert.Nil(t, ParseVector(""))
}

func TestEncodeVector_RoundTrip(t *testing.T) {
	original := []float32{0.25, -0.5, 1}
	encoded := EncodeVector(original)
	assert.Equal(t, original, ParseVector(encoded))
}

func TestEncodeVector_Empty(t *testing.T) {
	assert.Equal(t, "", EncodeVector(nil))
}

func TestValidateInput_RejectsWhitespace(t *testing.T) {
	_, err := validateInput("   \n\t ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateInput_TrimsText(t *testing.T) {
	got, err := validateInput("  backend developer  ")
	assert.NoError(t, err)
	assert.Equal(t, "backend developer", got)
}
