// Package io reads photos and writes pieces and sheets as PNG files.
//
// # Photos
//
// [ImportImage] opens a photo from disk, honouring its EXIF orientation so a
// portrait shot from a phone lands upright on the canvas. [ReadImage] does
// the same for any io.Reader.
//
// # Pieces
//
// Pieces are written one file per piece, named after the identifier:
//
//	out/
//	  101.png
//	  102.png
//	  ...
//	  407.png
//
// [ImportPieces] reads such a directory back, so sheets can be regenerated
// from an earlier cut without the photos. Files whose base name is not a
// positive integer are ignored.
//
// # Piece bundles
//
// [MarshalPieces] and [UnmarshalPieces] pack a cut into a single JSON
// document with PNG-encoded rasters. The pipeline stores cuts in its cache in
// this form.
//
// # Sheets
//
// [ExportPNG] writes any raster, typically a finished sheet, to a file.
package io
