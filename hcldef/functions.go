package hcldef

import (
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

const inchesPerFoot = 12

var feetFunc = function.New(&function.Spec{
	Description: "Converts feet to inches.",
	Params: []function.Parameter{
		{Name: "feet", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return args[0].Multiply(cty.NumberIntVal(inchesPerFoot)), nil
	},
})

var radiansFunc = function.New(&function.Spec{
	Description: "Converts degrees to radians.",
	Params: []function.Parameter{
		{Name: "degrees", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return args[0].Multiply(cty.NumberFloatVal(math.Pi)).Divide(cty.NumberIntVal(180)), nil
	},
})

// evalContext is shared by every expression in a definition file.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
		},
		Functions: map[string]function.Function{
			"feet":    feetFunc,
			"radians": radiansFunc,
			"abs":     stdlib.AbsoluteFunc,
			"ceil":    stdlib.CeilFunc,
			"floor":   stdlib.FloorFunc,
			"max":     stdlib.MaxFunc,
			"min":     stdlib.MinFunc,
			"format":  stdlib.FormatFunc,
			"upper":   stdlib.UpperFunc,
			"lower":   stdlib.LowerFunc,
		},
	}
}
