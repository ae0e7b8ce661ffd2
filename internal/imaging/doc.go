// Package imaging prepares local raster images before they are uploaded for
// vectorization.
//
// Nothing here vectorizes. The package only shapes the input: decoding with
// EXIF orientation applied, optional cropping, downscaling to a pixel budget
// and PNG encoding, plus color analysis used to suggest a palette.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner.
// For regions, (X1,Y1) is inclusive and (X2,Y2) is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless and do not modify their input images.
//
// # Color Representation
//
// Colors are returned as uppercase "#RRGGBB", the form accepted by the
// processing.palette and output.strokes.override_color parameters.
package imaging
