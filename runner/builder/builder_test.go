package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilder_Geometry(t *testing.T) {
	testCases := []struct {
		name       string
		cfg        Config
		wantLocal  []int
		wantGroups []int
	}{
		{"implicit single group", Config{GlobalSize: []int{64}}, []int{64}, []int{1}},
		{"1-D groups", Config{GlobalSize: []int{24}, LocalSize: []int{4}}, []int{4}, []int{6}},
		{"2-D groups", Config{GlobalSize: []int{8, 8}, LocalSize: []int{4, 4}}, []int{4, 4}, []int{2, 2}},
		{"3-D", Config{GlobalSize: []int{4, 4, 4}, LocalSize: []int{2, 2, 1}}, []int{2, 2, 1}, []int{2, 2, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kb, err := NewBuilder(tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, len(tc.cfg.GlobalSize), kb.WorkDim)
			assert.Equal(t, tc.cfg.GlobalSize, kb.GlobalSize)
			assert.Equal(t, tc.wantLocal, kb.LocalSize)
			assert.Equal(t, tc.wantGroups, kb.NumGroups)
		})
	}
}

func TestNewBuilder_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{"empty", Config{}},
		{"four dimensions", Config{GlobalSize: []int{2, 2, 2, 2}}},
		{"rank mismatch", Config{GlobalSize: []int{8, 8}, LocalSize: []int{4}}},
		{"zero global", Config{GlobalSize: []int{0}}},
		{"negative local", Config{GlobalSize: []int{8}, LocalSize: []int{-2}}},
		{"not divisible", Config{GlobalSize: []int{24}, LocalSize: []int{5}}},
		{"group too large", Config{GlobalSize: []int{2048}}},
		{"group too large in 2D", Config{GlobalSize: []int{64, 32}}},
		{"group product wraps", Config{
			GlobalSize: []int{1 << 32, 1 << 32},
			LocalSize:  []int{1 << 32, 1 << 32},
		}},
		{"empty define", Config{GlobalSize: []int{8}, Defines: map[string]int{"": 1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBuilder(tc.cfg)
			assert.Error(t, err)
		})
	}
}

func TestBuilder_TotalWorkItems(t *testing.T) {
	kb, err := NewBuilder(Config{GlobalSize: []int{8, 3}})
	require.NoError(t, err)
	assert.Equal(t, 24, kb.TotalWorkItems())
}

func TestBuilder_GeneratePreamble(t *testing.T) {
	kb, err := NewBuilder(Config{
		GlobalSize: []int{8, 8},
		LocalSize:  []int{4, 2},
		Defines:    map[string]int{"ZETA": 3, "ALPHA": 1},
	})
	require.NoError(t, err)

	preamble := kb.GeneratePreamble()
	assert.Equal(t, preamble, kb.KernelPreamble)

	for _, expected := range []string{
		"#define WORK_DIM 2",
		"#define GLOBAL_SIZE_0 8",
		"#define LOCAL_SIZE_0 4",
		"#define NUM_GROUPS_0 2",
		"#define GLOBAL_SIZE_1 8",
		"#define LOCAL_SIZE_1 2",
		"#define NUM_GROUPS_1 4",
		"#define ALPHA 1",
		"#define ZETA 3",
	} {
		assert.Contains(t, preamble, expected)
	}

	// User defines are emitted in sorted order
	assert.Less(t, strings.Index(preamble, "ALPHA"), strings.Index(preamble, "ZETA"))
	assert.NotContains(t, preamble, "GLOBAL_SIZE_2")
}

func TestParamBuilder_Inference(t *testing.T) {
	testCases := []struct {
		name     string
		binding  interface{}
		wantType DataType
		wantSize int64
	}{
		{"int32", make([]int32, 8), INT32, 8},
		{"int64", make([]int64, 3), INT64, 3},
		{"float32", make([]float32, 5), Float32, 5},
		{"float64", make([]float64, 2), Float64, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := InOut("x").Bind(tc.binding)
			assert.Equal(t, tc.wantType, p.Spec.DataType)
			assert.Equal(t, tc.wantSize, p.Spec.Size)
			assert.NoError(t, p.Spec.Validate())
		})
	}
}

func TestParamSpec_Validate(t *testing.T) {
	assert.Error(t, Input("").Bind(make([]int32, 4)).Spec.Validate(), "empty name")
	assert.Error(t, Input("x").Bind(make([]int32, 0)).Spec.Validate(), "empty slice")
	assert.Error(t, Input("x").Bind(7).Spec.Validate(), "scalar binding")
	assert.Error(t, Output("x").Size(4).Spec.Validate(), "missing type")
	assert.Error(t, Output("x").Type(INT32).Spec.Validate(), "missing size")
	assert.Error(t, Output("x").Type(INT32).Size(-4).Spec.Validate(), "negative size")
	assert.NoError(t, Output("x").Type(INT32).Size(4).Spec.Validate())
}

func TestParamSpec_IsConst(t *testing.T) {
	assert.True(t, Input("a").Spec.IsConst())
	assert.False(t, Output("b").Spec.IsConst())
	assert.False(t, InOut("c").Spec.IsConst())
}

func TestTypeHelpers(t *testing.T) {
	assert.Equal(t, int64(4), SizeOfType(INT32))
	assert.Equal(t, int64(4), SizeOfType(Float32))
	assert.Equal(t, int64(8), SizeOfType(INT64))
	assert.Equal(t, int64(8), SizeOfType(Float64))
	assert.Equal(t, "int", TypeName(INT32))
	assert.Equal(t, "long", TypeName(INT64))
	assert.Equal(t, "float", TypeName(Float32))
	assert.Equal(t, "double", TypeName(Float64))
}
