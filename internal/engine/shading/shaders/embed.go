// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CommonVertexShader transforms position and normal by u_transform and is
// shared by every program.
//
//go:embed common.vert
var CommonVertexShader string

// FlatFragmentShader emits constant white.
//
//go:embed flat.frag
var FlatFragmentShader string

// NormalColorFragmentShader renders the transformed normal as a colour.
//
//go:embed normal_color.frag
var NormalColorFragmentShader string

// DirectionalFragmentShader is ambient + Lambert + Blinn-Phong under one
// directional light.
//
//go:embed directional.frag
var DirectionalFragmentShader string

// DirectionalPiecewiseFragmentShader tints by u_color, picks shininess per
// screen quadrant and adds a point light at the cursor.
//
//go:embed directional_piecewise.frag
var DirectionalPiecewiseFragmentShader string

// TwoLightMouseFragmentShader is the directional model tinted by u_color.
//
//go:embed two_light_mouse.frag
var TwoLightMouseFragmentShader string

// RichMouseFragmentShader mixes a green ambient, a blue directional light and
// a red point light at the cursor.
//
//go:embed rich_mouse.frag
var RichMouseFragmentShader string
