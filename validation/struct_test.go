package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type limits struct {
	First *int   `json:"first,omitempty" validate:"omitempty,gte=0"`
	Mode  string `json:"mode" validate:"required,oneof=json yaml"`
}

func intPtr(v int) *int { return &v }

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(&limits{First: intPtr(-1)})
	assert.Equal(t, "The field 'first' must be greater than or equal to 0.", errs["first"])
	assert.Equal(t, "The field 'mode' is required.", errs["mode"])

	assert.Empty(t, ValidateStruct(&limits{First: intPtr(0), Mode: "json"}))
	assert.Empty(t, ValidateStruct(&limits{Mode: "yaml"}))
}

func TestValidateStructLanguage(t *testing.T) {
	errs := ValidateStruct(&limits{Mode: "json", First: intPtr(-5)}, "zh")
	assert.Equal(t, "字段 'first' 的值必须大于或等于 0。", errs["first"])
}

func TestJoin(t *testing.T) {
	got := Join(map[string]string{"b": "second.", "a": "first."})
	assert.Equal(t, "first. second.", got)
	assert.Equal(t, "", Join(nil))
}
