package vectorizer

// Mode selects how a vectorize call is processed and billed.
type Mode string

const (
	ModeProduction  Mode = "production"
	ModePreview     Mode = "preview"
	ModeTest        Mode = "test"
	ModeTestPreview Mode = "test_preview"
)

// FileFormat is the output file format.
type FileFormat string

const (
	FormatSVG FileFormat = "svg"
	FormatEPS FileFormat = "eps"
	FormatPDF FileFormat = "pdf"
	FormatDXF FileFormat = "dxf"
	FormatPNG FileFormat = "png"
)

// SVGVersion is the SVG dialect emitted when FileFormat is FormatSVG.
type SVGVersion string

const (
	SVG10     SVGVersion = "svg_1_0"
	SVG11     SVGVersion = "svg_1_1"
	SVGTiny12 SVGVersion = "svg_tiny_1_2"
)

// DXFCompatibility limits the primitives used in DXF output.
type DXFCompatibility string

const (
	DXFLinesOnly           DXFCompatibility = "lines_only"
	DXFLinesAndArcs        DXFCompatibility = "lines_and_arcs"
	DXFLinesArcsAndSplines DXFCompatibility = "lines_arcs_and_splines"
)

// AntiAliasing controls PNG rendering.
type AntiAliasing string

const (
	AntiAliased AntiAliasing = "anti_aliased"
	Aliased     AntiAliasing = "aliased"
)

// DrawStyle selects how shapes are drawn.
type DrawStyle string

const (
	DrawFillShapes   DrawStyle = "fill_shapes"
	DrawStrokeShapes DrawStyle = "stroke_shapes"
	DrawStrokeEdges  DrawStyle = "stroke_edges"
)

// ShapeStacking selects whether shapes cut out those below them.
type ShapeStacking string

const (
	StackingCutouts ShapeStacking = "cutouts"
	StackingStacked ShapeStacking = "stacked"
)

// GroupBy selects how shapes are grouped in the output.
type GroupBy string

const (
	GroupByNone   GroupBy = "none"
	GroupByColor  GroupBy = "color"
	GroupByParent GroupBy = "parent"
	GroupByLayer  GroupBy = "layer"
)

// SizeUnit is the unit of OutputSize width and height.
type SizeUnit string

const (
	UnitNone SizeUnit = "none"
	UnitPx   SizeUnit = "px"
	UnitPt   SizeUnit = "pt"
	UnitIn   SizeUnit = "in"
	UnitCm   SizeUnit = "cm"
	UnitMm   SizeUnit = "mm"
)

// AspectRatio selects how the output is fitted to an explicit width/height.
type AspectRatio string

const (
	AspectPreserveInset    AspectRatio = "preserve_inset"
	AspectPreserveOverflow AspectRatio = "preserve_overflow"
	AspectStretch          AspectRatio = "stretch"
)

// Bool returns a pointer to v, for optional request fields.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for optional request fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for optional request fields.
func Float(v float64) *float64 { return &v }

// OutputOptions holds the output.* parameters shared by Vectorize and
// Download. Zero values and nil pointers are omitted from the request so the
// service default applies.
type OutputOptions struct {
	FileFormat FileFormat `form:"output.file_format" yaml:"file_format" validate:"omitempty,oneof=svg eps pdf dxf png"`

	SVGVersion                SVGVersion `form:"output.svg.version" yaml:"svg_version" validate:"omitempty,oneof=svg_1_0 svg_1_1 svg_tiny_1_2"`
	SVGFixedSize              *bool      `form:"output.svg.fixed_size" yaml:"svg_fixed_size"`
	SVGAdobeCompatibilityMode *bool      `form:"output.svg.adobe_compatibility_mode" yaml:"svg_adobe_compatibility_mode"`

	DXFCompatibilityLevel  DXFCompatibility `form:"output.dxf.compatibility_level" yaml:"dxf_compatibility_level" validate:"omitempty,oneof=lines_only lines_and_arcs lines_arcs_and_splines"`
	BitmapAntiAliasingMode AntiAliasing     `form:"output.bitmap.anti_aliasing_mode" yaml:"bitmap_anti_aliasing_mode" validate:"omitempty,oneof=anti_aliased aliased"`

	DrawStyle                  DrawStyle     `form:"output.draw_style" yaml:"draw_style" validate:"omitempty,oneof=fill_shapes stroke_shapes stroke_edges"`
	ShapeStacking              ShapeStacking `form:"output.shape_stacking" yaml:"shape_stacking" validate:"omitempty,oneof=cutouts stacked"`
	GroupBy                    GroupBy       `form:"output.group_by" yaml:"group_by" validate:"omitempty,oneof=none color parent layer"`
	FlattenParameterizedShapes *bool         `form:"output.parameterized_shapes.flatten" yaml:"flatten_parameterized_shapes"`

	Curves    CurveOptions     `yaml:"curves"`
	GapFiller GapFillerOptions `yaml:"gap_filler"`
	Strokes   StrokeOptions    `yaml:"strokes"`
	Size      SizeOptions      `yaml:"size"`
}

// CurveOptions controls which curve primitives may appear in the output.
type CurveOptions struct {
	QuadraticBezier  *bool    `form:"output.curves.allowed.quadratic_bezier" yaml:"quadratic_bezier"`
	CubicBezier      *bool    `form:"output.curves.allowed.cubic_bezier" yaml:"cubic_bezier"`
	CircularArc      *bool    `form:"output.curves.allowed.circular_arc" yaml:"circular_arc"`
	EllipticalArc    *bool    `form:"output.curves.allowed.elliptical_arc" yaml:"elliptical_arc"`
	LineFitTolerance *float64 `form:"output.curves.line_fit_tolerance" yaml:"line_fit_tolerance" validate:"omitempty,min=0.001,max=1"`
}

// GapFillerOptions controls the strokes drawn to hide gaps between shapes.
type GapFillerOptions struct {
	Enabled          *bool    `form:"output.gap_filler.enabled" yaml:"enabled"`
	NonScalingStroke *bool    `form:"output.gap_filler.non_scaling_stroke" yaml:"non_scaling_stroke"`
	Clip             *bool    `form:"output.gap_filler.clip" yaml:"clip"`
	StrokeWidth      *float64 `form:"output.gap_filler.stroke_width" yaml:"stroke_width" validate:"omitempty,min=0,max=5"`
}

// StrokeOptions applies when DrawStyle is a stroke style.
type StrokeOptions struct {
	NonScalingStroke *bool    `form:"output.strokes.non_scaling_stroke" yaml:"non_scaling_stroke"`
	UseOverrideColor *bool    `form:"output.strokes.use_override_color" yaml:"use_override_color"`
	OverrideColor    string   `form:"output.strokes.override_color" yaml:"override_color" validate:"omitempty,hexcolor6"`
	StrokeWidth      *float64 `form:"output.strokes.stroke_width" yaml:"stroke_width" validate:"omitempty,min=0,max=5"`
}

// SizeOptions sets the physical size of the output.
type SizeOptions struct {
	Scale       *float64    `form:"output.size.scale" yaml:"scale" validate:"omitempty,min=0,max=1000"`
	Width       *float64    `form:"output.size.width" yaml:"width" validate:"omitempty,min=0,max=1000000000000"`
	Height      *float64    `form:"output.size.height" yaml:"height" validate:"omitempty,min=0,max=1000000000000"`
	Unit        SizeUnit    `form:"output.size.unit" yaml:"unit" validate:"omitempty,oneof=none px pt in cm mm"`
	AspectRatio AspectRatio `form:"output.size.aspect_ratio" yaml:"aspect_ratio" validate:"omitempty,oneof=preserve_inset preserve_overflow stretch"`
	AlignX      *float64    `form:"output.size.align_x" yaml:"align_x" validate:"omitempty,min=0,max=1"`
	AlignY      *float64    `form:"output.size.align_y" yaml:"align_y" validate:"omitempty,min=0,max=1"`
	InputDPI    *float64    `form:"output.size.input_dpi" yaml:"input_dpi" validate:"omitempty,min=1,max=1000000"`
	OutputDPI   *float64    `form:"output.size.output_dpi" yaml:"output_dpi" validate:"omitempty,min=1,max=1000000"`
}
